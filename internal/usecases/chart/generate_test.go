package chart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Luciacosmos/astrorailway/internal/domain"
)

type mockAstroAPI struct {
	svg     domain.ChartSVG
	err     error
	calls   int
	subject domain.Subject
}

func (m *mockAstroAPI) RenderNatalChartSVG(ctx context.Context, subject domain.Subject) (domain.ChartSVG, error) {
	m.calls++
	m.subject = subject
	if m.err != nil {
		return nil, m.err
	}
	return m.svg, nil
}

type mockStore struct {
	files    map[string][]byte
	writeErr error
	readErr  error
}

func (m *mockStore) Write(name string, svg []byte) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	path := name + "_NatalChart.svg"
	m.files[path] = svg
	return path, nil
}

func (m *mockStore) Read(path string) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return "", errors.New("file not found: " + path)
	}
	return string(data), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() domain.ChartRequest {
	return domain.ChartRequest{
		Name:   "Ada",
		Year:   "1990",
		Month:  "5",
		Day:    "3",
		Hour:   "10",
		Minute: "30",
		City:   "London",
		Nation: "GB",
	}
}

func TestGenerate_Success(t *testing.T) {
	api := &mockAstroAPI{svg: domain.ChartSVG("<svg>ada</svg>")}
	store := &mockStore{}
	svc := New(api, store, discardLogger())

	path, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != "Ada_NatalChart.svg" {
		t.Errorf("Generate() path = %q, want %q", path, "Ada_NatalChart.svg")
	}

	want := domain.Subject{Name: "Ada", Year: 1990, Month: 5, Day: 3, Hour: 10, Minute: 30, City: "London", Nation: "GB"}
	if api.subject != want {
		t.Errorf("subject passed to astro API = %+v, want %+v", api.subject, want)
	}

	content, err := svc.ReadChart(path)
	if err != nil {
		t.Fatalf("ReadChart() error = %v", err)
	}
	if content != "<svg>ada</svg>" {
		t.Errorf("ReadChart() = %q, want stored svg", content)
	}
}

func TestGenerate_NonNumericYear(t *testing.T) {
	api := &mockAstroAPI{svg: domain.ChartSVG("<svg/>")}
	svc := New(api, &mockStore{}, discardLogger())

	req := validRequest()
	req.Year = "ninety"

	_, err := svc.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("Generate() expected error for non-numeric year, got nil")
	}
	if !domain.IsGenerationError(err) {
		t.Errorf("Generate() error = %v, want GenerationError", err)
	}
	if !strings.Contains(err.Error(), "ninety") {
		t.Errorf("Generate() error = %v, want original value in message", err)
	}
	if api.calls != 0 {
		t.Errorf("astro API called %d times for unparseable request, want 0", api.calls)
	}
}

func TestGenerate_APIFailure(t *testing.T) {
	api := &mockAstroAPI{err: errors.New("city not found: Atlantis")}
	store := &mockStore{}
	svc := New(api, store, discardLogger())

	_, err := svc.Generate(context.Background(), validRequest())
	if err == nil {
		t.Fatal("Generate() expected error when astro API fails, got nil")
	}
	if !domain.IsGenerationError(err) {
		t.Errorf("Generate() error = %v, want GenerationError", err)
	}
	if !strings.Contains(err.Error(), "city not found: Atlantis") {
		t.Errorf("Generate() error = %v, want API error text preserved", err)
	}
	if len(store.files) != 0 {
		t.Error("store received a file although generation failed")
	}
}

func TestGenerate_StoreFailure(t *testing.T) {
	api := &mockAstroAPI{svg: domain.ChartSVG("<svg/>")}
	store := &mockStore{writeErr: errors.New("read-only file system")}
	svc := New(api, store, discardLogger())

	_, err := svc.Generate(context.Background(), validRequest())
	if err == nil {
		t.Fatal("Generate() expected error when write fails, got nil")
	}
	if !strings.Contains(err.Error(), "read-only file system") {
		t.Errorf("Generate() error = %v, want filesystem error text preserved", err)
	}
}

func TestGenerate_SameNameOverwrites(t *testing.T) {
	api := &mockAstroAPI{svg: domain.ChartSVG("<svg>first</svg>")}
	store := &mockStore{}
	svc := New(api, store, discardLogger())

	path1, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	api.svg = domain.ChartSVG("<svg>second</svg>")
	req := validRequest()
	req.City = "Paris"
	req.Nation = "FR"

	path2, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if path1 != path2 {
		t.Errorf("same name produced different paths: %q vs %q", path1, path2)
	}

	content, err := svc.ReadChart(path2)
	if err != nil {
		t.Fatalf("ReadChart() error = %v", err)
	}
	if content != "<svg>second</svg>" {
		t.Errorf("ReadChart() after overwrite = %q, want second chart only", content)
	}
}
