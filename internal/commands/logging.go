package commands

import (
	"strings"

	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

// CommandLogger returns a logger for one command group, tagged so command
// output can be filtered from pipeline output.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.CommandsLogger(provider, name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
