package sitecmd

import (
	"context"
	"io"

	command "github.com/goliatone/go-command"

	"github.com/nuwa-protocol/nuwa-web/internal/commands"
	"github.com/nuwa-protocol/nuwa-web/internal/posts"
	"github.com/nuwa-protocol/nuwa-web/internal/projects"
	"github.com/nuwa-protocol/nuwa-web/internal/sitemap"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

const (
	listPostsOperation    = "posts.list"
	listProjectsOperation = "projects.list"
	buildSitemapOperation = "sitemap.build"
	buildFeedOperation    = "feed.build"
	buildRobotsOperation  = "robots.build"
)

// Site is the read surface the commands print from.
type Site interface {
	ListAllPosts(ctx context.Context) ([]posts.Post, error)
	ListPostsByCategory(ctx context.Context, slug string) ([]posts.Post, error)
	ProjectBuckets(ctx context.Context) ([]projects.Bucket, error)
	BuildSitemapEntries(ctx context.Context) ([]sitemap.Entry, error)
	SitemapXML(ctx context.Context) ([]byte, error)
	FeedXML(ctx context.Context) ([]byte, error)
	RobotsTXT() string
}

var (
	_ command.Commander[ListPostsCommand]    = (*ListPostsHandler)(nil)
	_ command.Commander[ListProjectsCommand] = (*ListProjectsHandler)(nil)
	_ command.Commander[BuildSitemapCommand] = (*BuildSitemapHandler)(nil)
	_ command.Commander[BuildFeedCommand]    = (*BuildFeedHandler)(nil)
	_ command.Commander[BuildRobotsCommand]  = (*BuildRobotsHandler)(nil)
)

// ListPostsHandler prints post listings.
type ListPostsHandler struct {
	inner *commands.Handler[ListPostsCommand]
}

func NewListPostsHandler(site Site, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ListPostsCommand]) *ListPostsHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg ListPostsCommand) error {
		var (
			items []posts.Post
			err   error
		)
		if msg.Category != "" {
			items, err = site.ListPostsByCategory(ctx, msg.Category)
		} else {
			items, err = site.ListAllPosts(ctx)
		}
		if err != nil {
			return err
		}
		if msg.Format == FormatJSON {
			return writeJSON(out, items)
		}
		return writePosts(out, items)
	}

	handlerOpts := []commands.HandlerOption[ListPostsCommand]{
		commands.WithLogger[ListPostsCommand](logger),
		commands.WithOperation[ListPostsCommand](listPostsOperation),
		commands.WithMessageFields(func(msg ListPostsCommand) map[string]any {
			if msg.Category == "" {
				return nil
			}
			return map[string]any{"category": msg.Category}
		}),
	}
	return &ListPostsHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

// Execute satisfies command.Commander[ListPostsCommand].
func (h *ListPostsHandler) Execute(ctx context.Context, msg ListPostsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ListProjectsHandler prints the project buckets.
type ListProjectsHandler struct {
	inner *commands.Handler[ListProjectsCommand]
}

func NewListProjectsHandler(site Site, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ListProjectsCommand]) *ListProjectsHandler {
	exec := func(ctx context.Context, msg ListProjectsCommand) error {
		buckets, err := site.ProjectBuckets(ctx)
		if err != nil {
			return err
		}
		if msg.Format == FormatJSON {
			return writeJSON(out, buckets)
		}
		return writeBuckets(out, buckets)
	}

	handlerOpts := []commands.HandlerOption[ListProjectsCommand]{
		commands.WithLogger[ListProjectsCommand](logger),
		commands.WithOperation[ListProjectsCommand](listProjectsOperation),
	}
	return &ListProjectsHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *ListProjectsHandler) Execute(ctx context.Context, msg ListProjectsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildSitemapHandler prints sitemap.xml or its entries.
type BuildSitemapHandler struct {
	inner *commands.Handler[BuildSitemapCommand]
}

func NewBuildSitemapHandler(site Site, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSitemapCommand]) *BuildSitemapHandler {
	exec := func(ctx context.Context, msg BuildSitemapCommand) error {
		if msg.Format == FormatJSON {
			entries, err := site.BuildSitemapEntries(ctx)
			if err != nil {
				return err
			}
			return writeJSON(out, entries)
		}
		doc, err := site.SitemapXML(ctx)
		if err != nil {
			return err
		}
		_, err = out.Write(doc)
		return err
	}

	handlerOpts := []commands.HandlerOption[BuildSitemapCommand]{
		commands.WithLogger[BuildSitemapCommand](logger),
		commands.WithOperation[BuildSitemapCommand](buildSitemapOperation),
		commands.WithMessageFields(func(msg BuildSitemapCommand) map[string]any {
			return map[string]any{"format": formatOr(msg.Format, FormatXML)}
		}),
	}
	return &BuildSitemapHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *BuildSitemapHandler) Execute(ctx context.Context, msg BuildSitemapCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildFeedHandler prints the RSS feed.
type BuildFeedHandler struct {
	inner *commands.Handler[BuildFeedCommand]
}

func NewBuildFeedHandler(site Site, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[BuildFeedCommand]) *BuildFeedHandler {
	exec := func(ctx context.Context, _ BuildFeedCommand) error {
		doc, err := site.FeedXML(ctx)
		if err != nil {
			return err
		}
		_, err = out.Write(doc)
		return err
	}

	handlerOpts := []commands.HandlerOption[BuildFeedCommand]{
		commands.WithLogger[BuildFeedCommand](logger),
		commands.WithOperation[BuildFeedCommand](buildFeedOperation),
	}
	return &BuildFeedHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *BuildFeedHandler) Execute(ctx context.Context, msg BuildFeedCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildRobotsHandler prints robots.txt.
type BuildRobotsHandler struct {
	inner *commands.Handler[BuildRobotsCommand]
}

func NewBuildRobotsHandler(site Site, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[BuildRobotsCommand]) *BuildRobotsHandler {
	exec := func(_ context.Context, _ BuildRobotsCommand) error {
		_, err := io.WriteString(out, site.RobotsTXT())
		return err
	}

	handlerOpts := []commands.HandlerOption[BuildRobotsCommand]{
		commands.WithLogger[BuildRobotsCommand](logger),
		commands.WithOperation[BuildRobotsCommand](buildRobotsOperation),
	}
	return &BuildRobotsHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *BuildRobotsHandler) Execute(ctx context.Context, msg BuildRobotsCommand) error {
	return h.inner.Execute(ctx, msg)
}

func formatOr(format, fallback string) string {
	if format == "" {
		return fallback
	}
	return format
}
