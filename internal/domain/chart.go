package domain

// ChartRequest данные формы для построения натальной карты.
// Все поля приходят из HTTP-формы строками, уже очищенными от пробелов.
// Разбор числовых полей происходит позже, на этапе генерации.
type ChartRequest struct {
	Name   string
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
	City   string
	Nation string
}

// Fields возвращает все обязательные поля в порядке формы
func (r ChartRequest) Fields() []string {
	return []string{r.Name, r.Year, r.Month, r.Day, r.Hour, r.Minute, r.City, r.Nation}
}

// IsComplete проверяет, что все восемь полей заполнены
func (r ChartRequest) IsComplete() bool {
	for _, f := range r.Fields() {
		if f == "" {
			return false
		}
	}
	return true
}

// Subject нормализованный субъект натальной карты: дата и время разобраны в числа.
// Геокодинг города и страны выполняет внешний астро-API, здесь они остаются строками.
type Subject struct {
	Name   string
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	City   string
	Nation string
}

// ChartSVG - SVG-разметка натальной карты, как её вернул астро-API
type ChartSVG []byte
