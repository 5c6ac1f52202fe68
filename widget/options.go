package widget

import (
	"errors"
	"log/slog"
)

// config holds mutable state during widget construction.
type config struct {
	settings Settings
	logger   *slog.Logger
}

// Option configures a widget or registry during construction. Options
// return an error if validation fails.
type Option func(*config) error

// WithSettings overrides the attribute vocabulary and event prefix. Empty
// fields keep their defaults.
func WithSettings(s Settings) Option {
	return func(cfg *config) error {
		s.fillDefaults()
		cfg.settings = s
		return nil
	}
}

// WithLogger sets the logger used for markup-anomaly warnings. Widgets
// default to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}

func newConfig(opts ...Option) (config, error) {
	cfg := config{settings: DefaultSettings()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg, nil
}
