// Package sitemap assembles sitemap entries for static pages, category pages
// and visible posts, and renders them as sitemap XML and robots.txt.
package sitemap

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/internal/posts"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

const (
	categoryChangeFreq = "weekly"
	categoryPriority   = 0.5
	postChangeFreq     = "monthly"
	postPriority       = 0.7
)

const fallbackBaseURL = "http://localhost"

// Entry is one sitemap URL.
type Entry struct {
	URL          string    `json:"url"`
	LastModified time.Time `json:"lastModified"`
	ChangeFreq   string    `json:"changeFrequency,omitempty"`
	Priority     float64   `json:"priority"`
}

// Page is a fixed top-level page.
type Page struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// PostSource supplies the flattened post listing.
type PostSource interface {
	FeedEntries(ctx context.Context) ([]posts.FeedEntry, error)
}

// Config describes the site the sitemap covers.
type Config struct {
	BaseURL     string
	StaticPages []Page
}

// Generator builds sitemap entries on demand.
type Generator struct {
	cfg    Config
	posts  PostSource
	now    func() time.Time
	logger interfaces.Logger
}

// NewGenerator wires a generator. now stamps static and category pages; nil
// uses time.Now.
func NewGenerator(cfg Config, source PostSource, now func() time.Time, logger interfaces.Logger) *Generator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Generator{cfg: cfg, posts: source, now: now, logger: logger}
}

// Entries returns static pages, then category pages, then post pages.
func (g *Generator) Entries(ctx context.Context) ([]Entry, error) {
	var feed []posts.FeedEntry
	if g.posts != nil {
		var err error
		if feed, err = g.posts.FeedEntries(ctx); err != nil {
			return nil, err
		}
	}

	base := baseURL(g.cfg.BaseURL)
	generatedAt := g.now().UTC()
	categories := posts.Categories()

	entries := make([]Entry, 0, len(g.cfg.StaticPages)+len(categories)+len(feed))
	for _, page := range g.cfg.StaticPages {
		entries = append(entries, Entry{
			URL:          absoluteURL(base, page.Path),
			LastModified: generatedAt,
			ChangeFreq:   strings.ToLower(strings.TrimSpace(page.ChangeFreq)),
			Priority:     page.Priority,
		})
	}
	for _, category := range categories {
		entries = append(entries, Entry{
			URL:          absoluteURL(base, "/category/"+category.String()),
			LastModified: generatedAt,
			ChangeFreq:   categoryChangeFreq,
			Priority:     categoryPriority,
		})
	}
	for _, post := range feed {
		entries = append(entries, Entry{
			URL:          post.URL,
			LastModified: post.LastModified,
			ChangeFreq:   postChangeFreq,
			Priority:     postPriority,
		})
	}

	g.logger.Debug("sitemap.entries.built",
		"static", len(g.cfg.StaticPages),
		"categories", len(categories),
		"posts", len(feed),
	)
	return entries, nil
}

// XML builds the entries and renders them.
func (g *Generator) XML(ctx context.Context) ([]byte, error) {
	entries, err := g.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(Render(entries)), nil
}

// Robots renders robots.txt pointing at the sitemap.
func (g *Generator) Robots(includeSitemap bool) string {
	return Robots(g.cfg.BaseURL, includeSitemap)
}

// Render writes entries as a sitemaps.org urlset, keeping their order.
func Render(entries []Entry) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", html.EscapeString(entry.URL)))
		if !entry.LastModified.IsZero() {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastModified.UTC().Format(time.RFC3339)))
		}
		if entry.ChangeFreq != "" {
			builder.WriteString(fmt.Sprintf("    <changefreq>%s</changefreq>\n", html.EscapeString(entry.ChangeFreq)))
		}
		builder.WriteString(fmt.Sprintf("    <priority>%s</priority>\n", strconv.FormatFloat(entry.Priority, 'f', 1, 64)))
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

// Robots allows every agent and optionally advertises the sitemap.
func Robots(base string, includeSitemap bool) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	if includeSitemap {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", baseURL(base)))
	}
	return builder.String()
}

func baseURL(base string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		return fallbackBaseURL
	}
	return trimmed
}

func absoluteURL(base, route string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		route = "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return base + route
}
