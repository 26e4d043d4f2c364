package chart

import (
	"log/slog"

	"github.com/Luciacosmos/astrorailway/internal/ports/service"
	"github.com/Luciacosmos/astrorailway/internal/ports/storage"
)

// Service бизнес-логика генерации натальных карт
type Service struct {
	AstroAPIService service.IAstroAPIService
	ChartStore      storage.IChartStore
	Log             *slog.Logger
}

// New создаёт новый сервис генерации натальных карт
func New(
	astroAPIService service.IAstroAPIService,
	chartStore storage.IChartStore,
	log *slog.Logger,
) *Service {
	return &Service{
		AstroAPIService: astroAPIService,
		ChartStore:      chartStore,
		Log:             log,
	}
}
