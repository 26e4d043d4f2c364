package chart

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Luciacosmos/astrorailway/internal/domain"
)

// Generate строит натальную карту по данным формы и сохраняет её в SVG-файл.
// Возвращает путь к сохранённому файлу. Повторный вызов с тем же именем
// перезаписывает предыдущий файл.
func (s *Service) Generate(ctx context.Context, req domain.ChartRequest) (string, error) {
	subject, err := buildSubject(req)
	if err != nil {
		return "", domain.WrapGenerationError(err)
	}

	svg, err := s.AstroAPIService.RenderNatalChartSVG(ctx, subject)
	if err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("failed to render natal chart: %w", err))
	}

	path, err := s.ChartStore.Write(subject.Name, svg)
	if err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("failed to save natal chart: %w", err))
	}

	s.Log.Info("natal chart saved",
		"name", subject.Name,
		"birth_date", fmt.Sprintf("%02d.%02d.%04d %02d:%02d", subject.Day, subject.Month, subject.Year, subject.Hour, subject.Minute),
		"birth_place", subject.City+", "+subject.Nation,
		"svg_size", len(svg),
		"path", path,
	)

	return path, nil
}

// ReadChart возвращает текст сохранённого SVG-файла для встраивания в страницу
func (s *Service) ReadChart(path string) (string, error) {
	content, err := s.ChartStore.Read(path)
	if err != nil {
		return "", domain.WrapGenerationError(fmt.Errorf("failed to read generated chart: %w", err))
	}
	return content, nil
}

// buildSubject разбирает строковые поля даты и времени в числа.
// Нечисловые значения - ошибка генерации, а не валидации формы:
// форма проверяет только заполненность полей.
func buildSubject(req domain.ChartRequest) (domain.Subject, error) {
	year, err := strconv.Atoi(req.Year)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("invalid year %q: %w", req.Year, err)
	}

	month, err := strconv.Atoi(req.Month)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("invalid month %q: %w", req.Month, err)
	}

	day, err := strconv.Atoi(req.Day)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("invalid day %q: %w", req.Day, err)
	}

	hour, err := strconv.Atoi(req.Hour)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("invalid hour %q: %w", req.Hour, err)
	}

	minute, err := strconv.Atoi(req.Minute)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("invalid minute %q: %w", req.Minute, err)
	}

	return domain.Subject{
		Name:   req.Name,
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		City:   req.City,
		Nation: req.Nation,
	}, nil
}
