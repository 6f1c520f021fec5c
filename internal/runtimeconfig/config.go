package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var ErrBaseURLInvalid = errors.New("site config: base url must be an absolute http(s) url")
var ErrContentRootRequired = errors.New("site config: content root is required")
var ErrProjectsDirRequired = errors.New("site config: projects directory is required")
var ErrPostsDirRequired = errors.New("site config: posts directory is required")
var ErrProjectDescriptorRequired = errors.New("site config: project descriptor filename is required")
var ErrPostDescriptorRequired = errors.New("site config: at least one post descriptor filename is required")
var ErrImageExtensionsRequired = errors.New("site config: at least one image extension is required")

// ErrSitemapPriorityInvalid flags a static page priority outside [0, 1].
var ErrSitemapPriorityInvalid = errors.New("site config: sitemap priority must be between 0 and 1")
var ErrSitemapChangeFreqInvalid = errors.New("site config: sitemap change frequency is invalid")
var ErrLoggingProviderRequired = errors.New("site config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("site config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("site config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

// Config aggregates everything the content pipeline and its outputs need.
type Config struct {
	Site     SiteConfig     `mapstructure:"site"`
	Content  ContentConfig  `mapstructure:"content"`
	Projects ProjectsConfig `mapstructure:"projects"`
	Posts    PostsConfig    `mapstructure:"posts"`
	Markdown MarkdownConfig `mapstructure:"markdown"`
	Sitemap  SitemapConfig  `mapstructure:"sitemap"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SiteConfig describes the public site.
type SiteConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Language    string `mapstructure:"language"`
}

// ContentConfig locates the content tree.
type ContentConfig struct {
	Root            string   `mapstructure:"root"`
	ProjectsDir     string   `mapstructure:"projects_dir"`
	PostsDir        string   `mapstructure:"posts_dir"`
	ImageExtensions []string `mapstructure:"image_extensions"`
}

// ProjectsConfig controls project descriptor handling.
type ProjectsConfig struct {
	Descriptor string `mapstructure:"descriptor"`
	// URLPrefix is prepended to resolved asset file names.
	URLPrefix string `mapstructure:"url_prefix"`
	// DefaultTag applies when a descriptor omits the tag. Empty rejects such
	// descriptors instead.
	DefaultTag     string `mapstructure:"default_tag"`
	ValidateSchema bool   `mapstructure:"validate_schema"`
}

// PostsConfig controls post descriptor handling.
type PostsConfig struct {
	Descriptors     []string `mapstructure:"descriptors"`
	CoverImage      string   `mapstructure:"cover_image"`
	URLPrefix       string   `mapstructure:"url_prefix"`
	DefaultCategory string   `mapstructure:"default_category"`
	IncludeDrafts   bool     `mapstructure:"include_drafts"`
	RenderHTML      bool     `mapstructure:"render_html"`
}

// MarkdownConfig mirrors markdown.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string `mapstructure:"extensions"`
	HardWraps  bool     `mapstructure:"hard_wraps"`
	SafeMode   bool     `mapstructure:"safe_mode"`
}

// SitemapConfig lists the static pages emitted ahead of category and post
// entries.
type SitemapConfig struct {
	StaticPages []StaticPage `mapstructure:"static_pages"`
	Robots      bool         `mapstructure:"robots"`
}

// StaticPage is a fixed sitemap entry.
type StaticPage struct {
	Path       string  `mapstructure:"path"`
	ChangeFreq string  `mapstructure:"change_freq"`
	Priority   float64 `mapstructure:"priority"`
}

// FeedConfig controls the RSS output.
type FeedConfig struct {
	Path  string `mapstructure:"path"`
	Limit int    `mapstructure:"limit"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// DefaultImageExtensions is the probe order for co-located assets.
func DefaultImageExtensions() []string {
	return []string{"png", "svg", "jpg", "jpeg", "webp"}
}

// DefaultStaticPages returns the fixed top-level pages of the site.
func DefaultStaticPages() []StaticPage {
	return []StaticPage{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/blog", ChangeFreq: "weekly", Priority: 0.8},
	}
}

// DefaultConfig returns the layout used by the nuwa site.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			BaseURL:  "https://example.com",
			Title:    "Nuwa AI",
			Language: "en",
		},
		Content: ContentConfig{
			Root:            "content",
			ProjectsDir:     "projects",
			PostsDir:        "posts",
			ImageExtensions: DefaultImageExtensions(),
		},
		Projects: ProjectsConfig{
			Descriptor:     "metadata.json",
			URLPrefix:      "/projects",
			DefaultTag:     "app",
			ValidateSchema: true,
		},
		Posts: PostsConfig{
			Descriptors: []string{"index.md", "index.mdx"},
			CoverImage:  "cover-image",
			URLPrefix:   "/posts",
			RenderHTML:  true,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm"},
		},
		Sitemap: SitemapConfig{
			StaticPages: DefaultStaticPages(),
			Robots:      true,
		},
		Feed: FeedConfig{
			Path:  "/feed.xml",
			Limit: 20,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if err := validateBaseURL(cfg.Site.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Content.Root) == "" {
		return ErrContentRootRequired
	}
	if strings.TrimSpace(cfg.Content.ProjectsDir) == "" {
		return ErrProjectsDirRequired
	}
	if strings.TrimSpace(cfg.Content.PostsDir) == "" {
		return ErrPostsDirRequired
	}
	if !slices.ContainsFunc(cfg.Content.ImageExtensions, notBlank) {
		return ErrImageExtensionsRequired
	}
	if strings.TrimSpace(cfg.Projects.Descriptor) == "" {
		return ErrProjectDescriptorRequired
	}
	if !slices.ContainsFunc(cfg.Posts.Descriptors, notBlank) {
		return ErrPostDescriptorRequired
	}
	for _, page := range cfg.Sitemap.StaticPages {
		if page.Priority < 0 || page.Priority > 1 {
			return fmt.Errorf("%w: %s %v", ErrSitemapPriorityInvalid, page.Path, page.Priority)
		}
		if freq := strings.TrimSpace(page.ChangeFreq); freq != "" && !IsChangeFreq(freq) {
			return fmt.Errorf("%w: %s", ErrSitemapChangeFreqInvalid, freq)
		}
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// IsChangeFreq reports whether value is a sitemap changefreq keyword.
func IsChangeFreq(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "always", "hourly", "daily", "weekly", "monthly", "yearly", "never":
		return true
	default:
		return false
	}
}

func validateBaseURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrBaseURLInvalid
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBaseURLInvalid, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %s", ErrBaseURLInvalid, trimmed)
	}
	return nil
}

func notBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
