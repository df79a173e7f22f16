package service

import (
	"fmt"

	"github.com/MKhiriev/coffee-shop/internal/adapter"
	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/store"
	"github.com/MKhiriev/coffee-shop/models"
)

type Services struct {
	DrinkService   DrinkService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, keySetProvider adapter.KeySetProvider, env config.Environment, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		DrinkService:   NewDrinkValidationService().Wrap(NewDrinkService(storages.DrinkRepository, logger)),
		AuthService:    NewAuthService(keySetProvider, env.Auth0(), logger),
		AppInfoService: appInfoService,
	}, nil
}
