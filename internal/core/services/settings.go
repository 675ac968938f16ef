package services

import (
	"fmt"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyWorkers  = "workers"
	keyFixups   = "fixups.enabled"
	keyDataDir  = "storage.data_dir"
	keyEncoding = "input.encoding"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	knownFixups map[string]struct{}
}

// NewSettingsService creates a new settings service. knownFixups lists the
// fix-up names a configuration may enable.
func NewSettingsService(configStore driven.ConfigStore, knownFixups []string) *SettingsService {
	known := make(map[string]struct{}, len(knownFixups))
	for _, name := range knownFixups {
		known[name] = struct{}{}
	}
	return &SettingsService{
		configStore: configStore,
		knownFixups: known,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Workers:  s.getInt(keyWorkers, defaults.Workers),
		Fixups:   defaults.Fixups,
		DataDir:  s.configStore.GetString(keyDataDir),
		Encoding: s.getString(keyEncoding, defaults.Encoding),
	}
	// An explicit empty list disables every fix-up.
	if _, ok := s.configStore.Get(keyFixups); ok {
		settings.Fixups = s.configStore.GetStringSlice(keyFixups)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := s.check(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyWorkers, settings.Workers},
		{keyFixups, settings.Fixups},
		{keyDataDir, settings.DataDir},
		{keyEncoding, settings.Encoding},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("saving %s: %w", v.key, err)
		}
	}
	return nil
}

// Validate checks the stored settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.check(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) check(settings *domain.AppSettings) error {
	if settings.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", domain.ErrInvalidInput, settings.Workers)
	}
	for _, name := range settings.Fixups {
		if _, ok := s.knownFixups[name]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownFixup, name)
		}
	}
	return nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val != 0 {
		return val
	}
	return defaultVal
}
