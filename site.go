// Package site aggregates the nuwa content tree into projects grouped by tag,
// chronological post listings, a sitemap and an RSS feed. Every read goes
// back to the filesystem, so edits show up on the next call.
package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/nuwa-protocol/nuwa-web/internal/content"
	"github.com/nuwa-protocol/nuwa-web/internal/feeds"
	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/internal/markdown"
	"github.com/nuwa-protocol/nuwa-web/internal/posts"
	"github.com/nuwa-protocol/nuwa-web/internal/projects"
	"github.com/nuwa-protocol/nuwa-web/internal/sitemap"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

type (
	Post          = posts.Post
	Category      = posts.Category
	CategoryMeta  = posts.CategoryMeta
	FeedEntry     = posts.FeedEntry
	Project       = projects.Project
	Tag           = projects.Tag
	TagMeta       = projects.TagMeta
	ProjectBucket = projects.Bucket
	SitemapEntry  = sitemap.Entry
)

// Module is the read façade over one content tree.
type Module struct {
	cfg      Config
	logger   interfaces.Logger
	projects *projects.Service
	posts    *posts.Service
	sitemap  *sitemap.Generator
	feed     *feeds.Generator
}

// Option customises New.
type Option func(*options)

type options struct {
	fsys     fs.FS
	provider interfaces.LoggerProvider
	now      func() time.Time
}

// WithFS reads content from fsys instead of the working directory.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithClock sets the build time source used for static sitemap pages and
// the feed.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New validates cfg and wires the project, post, sitemap and feed services.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.fsys == nil {
		o.fsys = os.DirFS(".")
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.provider == nil {
		provider, err := NewLoggerProvider(cfg.Logging, nil)
		if err != nil {
			return nil, err
		}
		o.provider = provider
	}

	var parser interfaces.MarkdownParser
	if cfg.Posts.RenderHTML {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
		})
	}

	m := &Module{
		cfg:    cfg,
		logger: logging.ModuleLogger(o.provider, ""),
	}
	m.projects = projects.NewService(o.fsys, projects.Config{
		Root:            path.Join(cfg.Content.Root, cfg.Content.ProjectsDir),
		Descriptor:      cfg.Projects.Descriptor,
		DefaultTag:      projects.Tag(cfg.Projects.DefaultTag),
		URLPrefix:       cfg.Projects.URLPrefix,
		ImageExtensions: cfg.Content.ImageExtensions,
		ValidateSchema:  cfg.Projects.ValidateSchema,
	}, logging.ProjectsLogger(o.provider))
	m.posts = posts.NewService(o.fsys, posts.Config{
		Root:            path.Join(cfg.Content.Root, cfg.Content.PostsDir),
		Descriptors:     cfg.Posts.Descriptors,
		CoverImage:      cfg.Posts.CoverImage,
		URLPrefix:       cfg.Posts.URLPrefix,
		BaseURL:         cfg.Site.BaseURL,
		ImageExtensions: cfg.Content.ImageExtensions,
		DefaultCategory: posts.Category(cfg.Posts.DefaultCategory),
		IncludeDrafts:   cfg.Posts.IncludeDrafts,
	}, parser, logging.PostsLogger(o.provider))
	m.sitemap = sitemap.NewGenerator(sitemap.Config{
		BaseURL:     cfg.Site.BaseURL,
		StaticPages: staticPages(cfg.Sitemap.StaticPages),
	}, m.posts, o.now, logging.SitemapLogger(o.provider))
	m.feed = feeds.NewGenerator(feeds.Config{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
		Language:    cfg.Site.Language,
		Limit:       cfg.Feed.Limit,
	}, m.posts, o.now, logging.FeedsLogger(o.provider))

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// ListAllPosts returns every visible post, most recent first.
func (m *Module) ListAllPosts(ctx context.Context) ([]Post, error) {
	return m.posts.ListAll(ctx)
}

// ListPostsByCategory returns the visible posts of one category. Unknown
// slugs yield an empty listing and no error.
func (m *Module) ListPostsByCategory(ctx context.Context, slug string) ([]Post, error) {
	return m.posts.ListByCategory(ctx, slug)
}

// PostFeedEntries returns URL and last-modified pairs of the visible posts.
func (m *Module) PostFeedEntries(ctx context.Context) ([]FeedEntry, error) {
	return m.posts.FeedEntries(ctx)
}

// ListProjects returns every project in display order.
func (m *Module) ListProjects(ctx context.Context) ([]Project, error) {
	return m.projects.List(ctx)
}

// ListProjectsGroupedByTag returns the sorted projects of each non-empty tag.
func (m *Module) ListProjectsGroupedByTag(ctx context.Context) (map[Tag][]Project, error) {
	return m.projects.ListGroupedByTag(ctx)
}

// ProjectBuckets returns the non-empty tag groups in display order with
// their metadata.
func (m *Module) ProjectBuckets(ctx context.Context) ([]ProjectBucket, error) {
	return m.projects.Buckets(ctx)
}

func (m *Module) BuildSitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	return m.sitemap.Entries(ctx)
}

func (m *Module) SitemapXML(ctx context.Context) ([]byte, error) {
	return m.sitemap.XML(ctx)
}

func (m *Module) RobotsTXT() string {
	return m.sitemap.Robots(m.cfg.Sitemap.Robots)
}

func (m *Module) FeedXML(ctx context.Context) ([]byte, error) {
	return m.feed.XML(ctx)
}

// Categories returns the display metadata of every post category.
func (m *Module) Categories() []CategoryMeta {
	return posts.AllCategoryMeta()
}

// Tags returns the display metadata of every project tag.
func (m *Module) Tags() []TagMeta {
	return projects.AllTagMeta()
}

// IsRootMissing reports whether err is the missing content root failure,
// which callers may treat as an empty site.
func IsRootMissing(err error) bool {
	return content.IsRootMissing(err)
}

func staticPages(pages []StaticPage) []sitemap.Page {
	out := make([]sitemap.Page, 0, len(pages))
	for _, page := range pages {
		out = append(out, sitemap.Page{
			Path:       page.Path,
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}
	return out
}
