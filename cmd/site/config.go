package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	site "github.com/nuwa-protocol/nuwa-web"
)

const envPrefix = "SITE"

// loadConfig layers site.yaml and SITE_* variables over the defaults.
// Nested keys map to variables by replacing dots (logging.level reads
// SITE_LOGGING_LEVEL). The base url also answers to SITE_BASE_URL.
func loadConfig(opts *cliOptions) (site.Config, error) {
	cfg := site.DefaultConfig()

	v := viper.New()
	setDefaults(v, cfg)

	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
	} else {
		v.AddConfigPath(opts.dir)
		v.SetConfigName("site")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("site.base_url", "SITE_BASE_URL", "SITE_SITE_BASE_URL"); err != nil {
		return cfg, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.configFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers the scalar keys so AutomaticEnv can see them.
func setDefaults(v *viper.Viper, cfg site.Config) {
	v.SetDefault("site.base_url", cfg.Site.BaseURL)
	v.SetDefault("site.title", cfg.Site.Title)
	v.SetDefault("site.description", cfg.Site.Description)
	v.SetDefault("site.language", cfg.Site.Language)
	v.SetDefault("content.root", cfg.Content.Root)
	v.SetDefault("content.projects_dir", cfg.Content.ProjectsDir)
	v.SetDefault("content.posts_dir", cfg.Content.PostsDir)
	v.SetDefault("projects.default_tag", cfg.Projects.DefaultTag)
	v.SetDefault("projects.validate_schema", cfg.Projects.ValidateSchema)
	v.SetDefault("posts.default_category", cfg.Posts.DefaultCategory)
	v.SetDefault("posts.include_drafts", cfg.Posts.IncludeDrafts)
	v.SetDefault("posts.render_html", cfg.Posts.RenderHTML)
	v.SetDefault("sitemap.robots", cfg.Sitemap.Robots)
	v.SetDefault("feed.limit", cfg.Feed.Limit)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}
