package service

import (
	"context"

	"github.com/Luciacosmos/astrorailway/internal/domain"
)

// IAstroAPIService интерфейс для работы с астро-API
type IAstroAPIService interface {
	RenderNatalChartSVG(ctx context.Context, subject domain.Subject) (domain.ChartSVG, error)
}
