package logging

import (
	"context"
	"strings"

	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

const (
	rootModule     = "site"
	contentModule  = "site.content"
	projectsModule = "site.projects"
	postsModule    = "site.posts"
	sitemapModule  = "site.sitemap"
	feedsModule    = "site.feeds"
	commandsModule = "site.commands"
)

const (
	fieldEntityPath = "entity_path"
	fieldEntityKind = "entity_kind"
	fieldEntityDir  = "entity_dir"
)

// ModuleLogger returns a logger scoped to module. A nil provider, or one that
// returns nil, yields a no-op logger. The module name is attached as the
// "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger used by the shared scan pipeline.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// ProjectsLogger returns the logger used by the projects aggregation.
func ProjectsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, projectsModule)
}

// PostsLogger returns the logger used by the posts listing.
func PostsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, postsModule)
}

// SitemapLogger returns the logger used while assembling the sitemap and
// robots.txt.
func SitemapLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sitemapModule)
}

func FeedsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, feedsModule)
}

// CommandsLogger returns the logger of one command group, named
// "site.commands.<group>".
func CommandsLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	name := commandsModule
	if group = strings.TrimSpace(group); group != "" {
		name += "." + group
	}
	return ModuleLogger(provider, name)
}

// WithEntityContext annotates logger with the entity kind, directory and
// descriptor path. Empty values are skipped.
func WithEntityContext(logger interfaces.Logger, kind, dir, path string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		fields[fieldEntityKind] = trimmed
	}
	if trimmed := strings.TrimSpace(dir); trimmed != "" {
		fields[fieldEntityDir] = trimmed
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldEntityPath] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that discards everything.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
