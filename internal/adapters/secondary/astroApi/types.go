package astroApi

import "encoding/json"

// BirthData представляет данные о рождении для API запроса
type BirthData struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	City   string `json:"city"`
	Nation string `json:"nation"`
}

// SubjectRequest запрос на создание субъекта.
// Геокодинг города и проверку даты выполняет API, поэтому запрос
// может завершиться ошибкой при нерезолвящемся городе или некорректной дате.
type SubjectRequest struct {
	Name             string    `json:"name"`
	BirthData        BirthData `json:"birth_data"`
	GeonamesUsername string    `json:"geonames_username,omitempty"`
}

// SubjectResponse представляет ответ API на создание субъекта
type SubjectResponse struct {
	Status    string          `json:"status"`
	Code      int             `json:"code,omitempty"`
	Message   string          `json:"message,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Subject   json.RawMessage `json:"subject,omitempty"`
	RawJSON   string          `json:"-"` // Оригинальный JSON ответ
}

// ChartSVGRequest запрос на рендер SVG натальной карты по готовому субъекту
type ChartSVGRequest struct {
	Subject  json.RawMessage `json:"subject"`
	Theme    string          `json:"theme,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"` // содержимое файла настроек как есть
}
