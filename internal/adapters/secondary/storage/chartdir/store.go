package chartdir

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	ports "github.com/Luciacosmos/astrorailway/internal/ports/storage"
)

const (
	chartFileSuffix = "_NatalChart.svg"
	defaultSettings = "{}"
)

// Store файловое хранилище сгенерированных SVG-карт.
// Реализует интерфейс storage.IChartStore.
type Store struct {
	cfg *Config
	Log *slog.Logger
}

// New создаёт новое хранилище карт
func New(cfg *Config, log *slog.Logger) *Store {
	return &Store{
		cfg: cfg,
		Log: log,
	}
}

var _ ports.IChartStore = (*Store)(nil)

// Bootstrap создаёт выходную директорию и файл настроек при первом запуске.
// Ошибки здесь фатальны: без директории и файла настроек сервис не стартует.
func (s *Store) Bootstrap() error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create chart directory %s: %w", s.cfg.Dir, err)
	}

	absDir, err := filepath.Abs(s.cfg.Dir)
	if err != nil {
		absDir = s.cfg.Dir
	}
	s.Log.Info("chart directory ready", "dir", absDir)

	if _, err := os.Stat(s.cfg.SettingsFile); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(s.cfg.SettingsFile, []byte(defaultSettings), 0o644); err != nil {
			return fmt.Errorf("failed to create settings file %s: %w", s.cfg.SettingsFile, err)
		}
		s.Log.Warn("settings file not found, default created", "path", s.cfg.SettingsFile)
	} else if err != nil {
		return fmt.Errorf("failed to stat settings file %s: %w", s.cfg.SettingsFile, err)
	}

	return nil
}

// Settings возвращает содержимое файла настроек как есть для передачи в астро-API
func (s *Store) Settings() (json.RawMessage, error) {
	data, err := os.ReadFile(s.cfg.SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", s.cfg.SettingsFile, err)
	}
	return json.RawMessage(data), nil
}

// FilePath возвращает путь к файлу карты для указанного имени
func (s *Store) FilePath(name string) string {
	return filepath.Join(s.cfg.Dir, name+chartFileSuffix)
}

// Write сохраняет SVG в выходную директорию.
// Повторная запись с тем же именем молча перезаписывает предыдущий файл.
func (s *Store) Write(name string, svg []byte) (string, error) {
	path := s.FilePath(name)
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return "", fmt.Errorf("failed to write chart file %s: %w", path, err)
	}
	return path, nil
}

// Read читает текст SVG-файла целиком
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read chart file %s: %w", path, err)
	}
	return string(data), nil
}

// CheckWritable проверяет, что выходная директория доступна на запись
func (s *Store) CheckWritable() error {
	probe, err := os.CreateTemp(s.cfg.Dir, ".ready-*")
	if err != nil {
		return fmt.Errorf("chart directory is not writable: %w", err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}
