package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/service"
	"github.com/MKhiriev/coffee-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type mockDrinkSvc struct {
	listFn   func(ctx context.Context) ([]models.Drink, error)
	createFn func(ctx context.Context, req models.CreateDrinkRequest) (models.Drink, error)
	updateFn func(ctx context.Context, req models.UpdateDrinkRequest) (models.Drink, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockDrinkSvc) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	if m.listFn == nil {
		return nil, service.ErrNoDrinks
	}
	return m.listFn(ctx)
}

func (m *mockDrinkSvc) CreateDrink(ctx context.Context, req models.CreateDrinkRequest) (models.Drink, error) {
	if m.createFn == nil {
		return models.Drink{ID: 1, Title: req.Title, Recipe: req.Recipe}, nil
	}
	return m.createFn(ctx, req)
}

func (m *mockDrinkSvc) UpdateDrink(ctx context.Context, req models.UpdateDrinkRequest) (models.Drink, error) {
	if m.updateFn == nil {
		return models.Drink{ID: req.ID}, nil
	}
	return m.updateFn(ctx, req)
}

func (m *mockDrinkSvc) DeleteDrink(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

// mockAuthSvc accepts "Bearer <anything>" and grants the permissions it
// holds. Any other header is rejected the way the real service does.
type mockAuthSvc struct {
	permissions []string
	parseErr    error
}

func (m *mockAuthSvc) ParseToken(_ context.Context, header string) (*models.Claims, error) {
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	if header == "" {
		return nil, &service.AuthError{
			Code:        service.CodeAuthorizationHeaderMissing,
			Description: service.DescHeaderMissing,
			StatusCode:  http.StatusUnauthorized,
		}
	}

	claims := &models.Claims{Permissions: m.permissions}
	claims.Subject = "auth0|barista"
	return claims, nil
}

func (m *mockAuthSvc) CheckPermission(claims *models.Claims, permission string) error {
	if !claims.HasPermission(permission) {
		return &service.AuthError{
			Code:        service.CodeUnauthorized,
			Description: service.DescPermissionNotFound,
			StatusCode:  http.StatusForbidden,
		}
	}
	return nil
}

func (m *mockAuthSvc) RefreshKeys(_ context.Context) error {
	return nil
}

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoSvc) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testEnvironment(t *testing.T, production bool) config.Environment {
	t.Helper()

	scheme := "http"
	if production {
		scheme = "https"
	}

	env, err := config.NewEnvironment(
		production,
		scheme+"://127.0.0.1:5000",
		config.NewAuth0("dev-t-4sg5-6.eu", "drink", "f4abwQOHufPxU63932dw2cns9AEc3n7p", scheme+"://localhost:8100/tabs/user-page"),
	)
	require.NoError(t, err)
	return env
}

func newTestHandler(t *testing.T, drinks service.DrinkService, auth service.AuthService) *Handler {
	t.Helper()

	return NewHandler(&service.Services{
		DrinkService:   drinks,
		AuthService:    auth,
		AppInfoService: &mockAppInfoSvc{version: "v1.0.0"},
	}, testEnvironment(t, false), 0, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	env := testEnvironment(t, false)

	h := NewHandler(svc, env, time.Second, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, env, h.env)
	assert.Equal(t, time.Second, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, testEnvironment(t, false), 0, logger.Nop())
	h2 := NewHandler(&service.Services{}, testEnvironment(t, false), 0, logger.Nop())

	assert.NotSame(t, h1, h2)
}
