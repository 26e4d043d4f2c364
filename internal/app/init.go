package app

import (
	"fmt"
	"net/http"

	server "github.com/Luciacosmos/astrorailway/internal/adapters/primary/http"
	chartController "github.com/Luciacosmos/astrorailway/internal/adapters/primary/http/controllers/chart"
	healthcheckController "github.com/Luciacosmos/astrorailway/internal/adapters/primary/http/controllers/healthcheck"
	astroApiAdapter "github.com/Luciacosmos/astrorailway/internal/adapters/secondary/astroApi"
	"github.com/Luciacosmos/astrorailway/internal/adapters/secondary/storage/chartdir"
	astroApiService "github.com/Luciacosmos/astrorailway/internal/services/astroApi"
	chartUsecase "github.com/Luciacosmos/astrorailway/internal/usecases/chart"
)

type Dependencies struct {
	HTTPServer *http.Server
	ChartStore *chartdir.Store
}

// initDependencies инициализирует все зависимости приложения.
// Ошибки bootstrap-а хранилища фатальны: выходная директория и файл настроек
// обязаны существовать до приёма запросов.
func (a *App) initDependencies() (*Dependencies, error) {
	store := chartdir.New(a.Cfg.Charts, a.Log)
	if err := store.Bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap chart storage: %w", err)
	}

	settings, err := store.Settings()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart settings: %w", err)
	}

	apiClient := astroApiAdapter.NewClient(a.Cfg.AstroAPI, a.Log)
	astroService := astroApiService.New(apiClient, settings)

	chartSvc := chartUsecase.New(astroService, store, a.Log)

	chartCtrl := chartController.New(chartSvc, a.Log)
	healthCheck := healthcheckController.New(store, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, chartCtrl, healthCheck)

	return &Dependencies{
		HTTPServer: httpServer,
		ChartStore: store,
	}, nil
}
