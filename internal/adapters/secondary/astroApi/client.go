package astroApi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

const (
	CreateSubject = "subjects/natal"
	RenderSVG     = "charts/natal/svg"
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент для работы с астрологическим API
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент для работы с астро-API
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		Log: log,
	}
}

// buildURL собирает полный URL из BaseURL, ApiVersion и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// ResolveSubject создаёт субъект натальной карты через API.
// Ошибки геокодинга (неизвестный город/страна) и некорректной даты приходят отсюда.
func (c *Client) ResolveSubject(ctx context.Context, req SubjectRequest) (*SubjectResponse, error) {
	if req.GeonamesUsername == "" {
		req.GeonamesUsername = c.cfg.GeonamesUsername
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := c.buildURL(CreateSubject)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	rawJSON := string(body)

	if resp.StatusCode != http.StatusOK {
		// Ошибка внешнего API - Debug
		c.Log.Debug("astro API returned non-200 status for subject",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return nil, fmt.Errorf("astro API error [status=%d]: %s", resp.StatusCode, truncateString(rawJSON, 500))
	}

	var subjResp SubjectResponse
	if err := json.Unmarshal(body, &subjResp); err != nil {
		c.Log.Debug("failed to unmarshal astro API response",
			"error", err,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return nil, fmt.Errorf("astro API unmarshal failed [status=%d]: %w", resp.StatusCode, err)
	}

	subjResp.RawJSON = rawJSON

	return &subjResp, nil
}

// RenderNatalChartSVG рендерит SVG натальной карты для готового субъекта.
// Возвращает тело ответа как есть - это и есть SVG-разметка.
func (c *Client) RenderNatalChartSVG(ctx context.Context, req ChartSVGRequest) ([]byte, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := c.buildURL(RenderSVG)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("astro API returned non-200 status for chart svg",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("astro API error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	return body, nil
}
