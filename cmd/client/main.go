package main

import (
	"fmt"

	"github.com/MKhiriev/coffee-shop/internal/client"
	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("coffee-shop-client", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("coffee-shop-client", cfg.Environment.Production())

	app := client.NewApp(cfg, buildInfo, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
