package posts

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/nuwa-protocol/nuwa-web/internal/content"
	"github.com/nuwa-protocol/nuwa-web/internal/identity"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

const (
	fieldTitle       = "title"
	fieldExcerpt     = "excerpt"
	fieldDescription = "description"
	fieldPublishDate = "publishDate"
	fieldCategory    = "category"
	fieldAuthor      = "author"
	fieldTags        = "tags"
	fieldDraft       = "draft"
)

const defaultCoverImage = "cover-image"

var (
	ErrSlugInvalid     = errors.New("posts: directory name is not a valid slug")
	ErrCategoryMissing = errors.New("posts: category missing and no default configured")
)

// Post is a normalised post directory. Dir doubles as the slug.
type Post struct {
	content.Entity
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Category     Category  `json:"category"`
	Author       string    `json:"author,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	PublishDate  time.Time `json:"publishDate"`
	Draft        bool      `json:"draft,omitempty"`
	Body         string    `json:"-"`
	BodyHTML     string    `json:"html,omitempty"`
	LastModified time.Time `json:"lastModified"`
	URL          string    `json:"url"`
}

// Cover returns the resolved cover image URL, if any.
func (p Post) Cover() (string, bool) {
	return p.Asset(content.AssetCover)
}

// NormalizeOptions configures Normalize.
type NormalizeOptions struct {
	// DefaultCategory applies when the header has no category. Empty rejects
	// such posts.
	DefaultCategory Category
	Assets          content.AssetResolver
	// CoverImage is the asset base name probed for the cover.
	CoverImage string
	// BaseURL prefixes the canonical "/<slug>" URL.
	BaseURL string
	// Markdown renders BodyHTML when set.
	Markdown interfaces.MarkdownParser
}

// Normalize maps a front matter record onto a Post.
func Normalize(record content.Record, opts NormalizeOptions) (Post, error) {
	postSlug := record.Dir
	if !slug.IsValid(postSlug) {
		if suggestion, err := slug.Normalize(postSlug); err == nil && suggestion != "" && suggestion != postSlug {
			return Post{}, fmt.Errorf("%w: %q (try %q)", ErrSlugInvalid, postSlug, suggestion)
		}
		return Post{}, fmt.Errorf("%w: %q", ErrSlugInvalid, postSlug)
	}

	title, ok := content.String(record.Fields, fieldTitle)
	if !ok {
		title = postSlug
	}

	category, err := resolveCategory(record.Fields, opts.DefaultCategory)
	if err != nil {
		return Post{}, err
	}

	published, _, err := content.Time(record.Fields, fieldPublishDate)
	if err != nil {
		return Post{}, fmt.Errorf("posts: %s: %w", record.Path, err)
	}
	draft, _, err := content.Bool(record.Fields, fieldDraft)
	if err != nil {
		return Post{}, fmt.Errorf("posts: %s: %w", record.Path, err)
	}
	author, _ := content.String(record.Fields, fieldAuthor)

	post := Post{
		Entity: content.Entity{
			Dir:         postSlug,
			Title:       title,
			IdentityKey: postSlug,
			Description: description(record.Fields),
			Assets:      map[content.AssetKind]string{},
		},
		ID:           identity.PostUUID(postSlug),
		Slug:         postSlug,
		Category:     category,
		Author:       author,
		Tags:         content.Strings(record.Fields, fieldTags),
		PublishDate:  published,
		Draft:        draft,
		Body:         string(record.Body),
		LastModified: published,
		URL:          canonicalURL(opts.BaseURL, postSlug),
	}
	if post.LastModified.IsZero() {
		post.LastModified = record.ModTime.UTC()
	}

	coverName := opts.CoverImage
	if coverName == "" {
		coverName = defaultCoverImage
	}
	if cover, ok := opts.Assets.Resolve(path.Dir(record.Path), coverName); ok {
		post.Assets[content.AssetCover] = cover
	}

	if opts.Markdown != nil && len(record.Body) > 0 {
		html, err := opts.Markdown.Parse(record.Body)
		if err != nil {
			return Post{}, fmt.Errorf("posts: %s: render body: %w", record.Path, err)
		}
		post.BodyHTML = string(html)
	}

	if err := post.validate(); err != nil {
		return Post{}, fmt.Errorf("posts: %s: %w", record.Path, err)
	}
	return post, nil
}

func (p *Post) validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Category, validation.Required, categoryRule()),
		validation.Field(&p.URL, validation.Required),
	)
}

// description prefers excerpt and keeps an empty description distinct from
// a missing one.
func description(fields map[string]any) *string {
	if excerpt, ok := content.String(fields, fieldExcerpt); ok {
		return &excerpt
	}
	if desc := content.OptionalString(fields, fieldDescription); desc != nil {
		return desc
	}
	return content.OptionalString(fields, fieldExcerpt)
}

func resolveCategory(fields map[string]any, fallback Category) (Category, error) {
	raw, present := fields[fieldCategory]
	if !present || raw == nil {
		if fallback == "" {
			return "", ErrCategoryMissing
		}
		return ParseCategory(string(fallback))
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrCategoryInvalid, raw)
	}
	return ParseCategory(value)
}

func canonicalURL(base, postSlug string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + "/" + postSlug
}
