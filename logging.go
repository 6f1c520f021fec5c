package site

import (
	"fmt"
	"io"
	"strings"

	"github.com/nuwa-protocol/nuwa-web/internal/logging/console"
	"github.com/nuwa-protocol/nuwa-web/internal/logging/gologger"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

// NewLoggerProvider builds the provider named by cfg.Provider. w is only used
// by the console provider; nil means stderr.
func NewLoggerProvider(cfg LoggingConfig, w io.Writer) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		level, ok := console.ParseLevel(cfg.Level)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Level)
		}
		return console.NewProvider(console.Options{Writer: w, MinLevel: &level}), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
