package astroApi

type Config struct {
	BaseURL          string `envconfig:"BASE_URL"`
	ApiVersion       string `envconfig:"VERSION" default:"v1"`
	ApiKey           string `envconfig:"KEY"`
	GeonamesUsername string `envconfig:"GEONAMES_USERNAME" default:"astrolucia"`
	SkipSSL          string `envconfig:"SKIP_SSL"` // Railway требует строки вместо bool
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
