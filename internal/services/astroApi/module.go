package astroApi

import (
	"context"
	"encoding/json"
	"fmt"

	astroApiAdapter "github.com/Luciacosmos/astrorailway/internal/adapters/secondary/astroApi"
	"github.com/Luciacosmos/astrorailway/internal/domain"
	"github.com/Luciacosmos/astrorailway/internal/ports/service"
)

// Service реализует IAstroAPIService для работы с астро-API
type Service struct {
	client   *astroApiAdapter.Client
	settings json.RawMessage
}

// New создаёт новый сервис для работы с астро-API.
// settings - содержимое файла настроек карты, прочитанное один раз на старте.
func New(client *astroApiAdapter.Client, settings json.RawMessage) service.IAstroAPIService {
	return &Service{
		client:   client,
		settings: settings,
	}
}

// RenderNatalChartSVG строит натальную карту субъекта и возвращает готовую SVG-разметку.
// Две операции API: создание субъекта (геокодинг + проверка даты) и рендер SVG.
func (s *Service) RenderNatalChartSVG(ctx context.Context, subject domain.Subject) (domain.ChartSVG, error) {
	req := astroApiAdapter.SubjectRequest{
		Name: subject.Name,
		BirthData: astroApiAdapter.BirthData{
			Year:   subject.Year,
			Month:  subject.Month,
			Day:    subject.Day,
			Hour:   subject.Hour,
			Minute: subject.Minute,
			City:   subject.City,
			Nation: subject.Nation,
		},
	}

	subjResp, err := s.client.ResolveSubject(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	if subjResp.Status != "" && subjResp.Status != "success" {
		return nil, fmt.Errorf("astro API returned error: status=%s, code=%d, message=%s",
			subjResp.Status, subjResp.Code, subjResp.Message)
	}

	if len(subjResp.Subject) == 0 {
		return nil, fmt.Errorf("astro API returned empty subject")
	}

	svg, err := s.client.RenderNatalChartSVG(ctx, astroApiAdapter.ChartSVGRequest{
		Subject:  subjResp.Subject,
		Settings: s.settings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render natal chart svg: %w", err)
	}

	if len(svg) == 0 {
		return nil, fmt.Errorf("astro API returned empty svg")
	}

	return domain.ChartSVG(svg), nil
}
