package chartdir

type Config struct {
	Dir          string `envconfig:"DIR" default:"chart"`
	SettingsFile string `envconfig:"SETTINGS_FILE" default:"kr.config.json"`
}
