package posts

import (
	"context"
	"errors"
	"io/fs"
	"slices"
	"time"

	"github.com/nuwa-protocol/nuwa-web/internal/content"
	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

// Config locates post directories and tunes normalisation.
type Config struct {
	// Root is the posts directory inside the filesystem.
	Root            string
	Descriptors     []string
	CoverImage      string
	URLPrefix       string
	BaseURL         string
	ImageExtensions []string
	DefaultCategory Category
	// IncludeDrafts exposes drafts to every listing, for previews.
	IncludeDrafts bool
}

// FeedEntry is the flattened view used by sitemaps and feeds.
type FeedEntry struct {
	URL          string    `json:"url"`
	LastModified time.Time `json:"lastModified"`
}

// Service reads posts fresh from the filesystem on every call.
type Service struct {
	pipeline      *content.Pipeline[Post]
	includeDrafts bool
	logger        interfaces.Logger
}

// NewService wires the post pipeline. markdown may be nil, in which case
// BodyHTML is left empty.
func NewService(fsys fs.FS, cfg Config, markdown interfaces.MarkdownParser, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	descriptors := cfg.Descriptors
	if len(descriptors) == 0 {
		descriptors = []string{"index.md", "index.mdx"}
	}

	opts := NormalizeOptions{
		DefaultCategory: cfg.DefaultCategory,
		Assets: content.AssetResolver{
			FS:         fsys,
			Extensions: cfg.ImageExtensions,
			URLPrefix:  cfg.URLPrefix,
		},
		CoverImage: cfg.CoverImage,
		BaseURL:    cfg.BaseURL,
		Markdown:   markdown,
	}

	schema := content.Schema[Post]{
		Kind:   content.KindPost,
		Reader: content.FrontMatterReader{Filenames: descriptors},
		Normalize: func(record content.Record) (Post, error) {
			return Normalize(record, opts)
		},
	}
	return &Service{
		pipeline:      content.NewPipeline(fsys, cfg.Root, schema, logger),
		includeDrafts: cfg.IncludeDrafts,
		logger:        logger,
	}
}

// ListAll returns every visible post, most recent first.
func (s *Service) ListAll(ctx context.Context) ([]Post, error) {
	items, err := s.pipeline.Load(ctx)
	if err != nil {
		return nil, err
	}
	visible := s.visible(items)
	slices.SortStableFunc(visible, compareChronological)
	return visible, nil
}

// ListByCategory returns the visible posts of the named category. An unknown
// category yields an empty listing.
func (s *Service) ListByCategory(ctx context.Context, slug string) ([]Post, error) {
	category, err := ParseCategory(slug)
	if errors.Is(err, ErrCategoryInvalid) {
		s.logger.Debug("posts.category.unknown", "category", slug)
		return []Post{}, nil
	}
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Post, 0, len(all))
	for _, post := range all {
		if post.Category == category {
			out = append(out, post)
		}
	}
	return out, nil
}

// FeedEntries flattens the visible posts into URL and timestamp pairs, in
// listing order.
func (s *Service) FeedEntries(ctx context.Context) ([]FeedEntry, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]FeedEntry, 0, len(all))
	for _, post := range all {
		entries = append(entries, FeedEntry{URL: post.URL, LastModified: post.LastModified})
	}
	return entries, nil
}

func (s *Service) visible(items []Post) []Post {
	if s.includeDrafts {
		return items
	}
	out := items[:0:0]
	for _, post := range items {
		if post.Draft {
			logging.WithEntityContext(s.logger, string(content.KindPost), post.Dir, "").
				Debug("posts.draft.hidden")
			continue
		}
		out = append(out, post)
	}
	return out
}

// compareChronological orders by publish date descending with undated posts
// last, then by the shared entity order.
func compareChronological(a, b Post) int {
	switch {
	case a.PublishDate.IsZero() && !b.PublishDate.IsZero():
		return 1
	case !a.PublishDate.IsZero() && b.PublishDate.IsZero():
		return -1
	}
	if c := b.PublishDate.Compare(a.PublishDate); c != 0 {
		return c
	}
	return content.CompareEntities(a.Entity, b.Entity)
}
