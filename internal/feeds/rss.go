// Package feeds renders the RSS 2.0 feed of visible posts.
package feeds

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/internal/posts"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

const maxFeedItems = 100

// PostLister supplies posts in listing order.
type PostLister interface {
	ListAll(ctx context.Context) ([]posts.Post, error)
}

// Config describes the feed channel.
type Config struct {
	Title       string
	Description string
	BaseURL     string
	Language    string
	// Limit caps the item count; zero or values above 100 use 100.
	Limit int
}

type Generator struct {
	cfg    Config
	posts  PostLister
	now    func() time.Time
	logger interfaces.Logger
}

func NewGenerator(cfg Config, lister PostLister, now func() time.Time, logger interfaces.Logger) *Generator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Generator{cfg: cfg, posts: lister, now: now, logger: logger}
}

// XML lists posts and renders them as RSS.
func (g *Generator) XML(ctx context.Context) ([]byte, error) {
	var items []posts.Post
	if g.posts != nil {
		var err error
		if items, err = g.posts.ListAll(ctx); err != nil {
			return nil, err
		}
	}
	if limit := g.limit(); len(items) > limit {
		items = items[:limit]
	}
	g.logger.Debug("feeds.rss.built", "items", len(items))
	return []byte(RenderRSS(g.cfg, items, g.now())), nil
}

func (g *Generator) limit() int {
	if g.cfg.Limit <= 0 || g.cfg.Limit > maxFeedItems {
		return maxFeedItems
	}
	return g.cfg.Limit
}

// RenderRSS writes items as an RSS 2.0 channel in the given order.
func RenderRSS(cfg Config, items []posts.Post, generatedAt time.Time) string {
	baseLink := baseURLWithFallback(cfg.BaseURL)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(channelTitle(cfg))))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(baseLink)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(channelDescription(cfg))))
	if lang := strings.TrimSpace(cfg.Language); lang != "" {
		builder.WriteString(fmt.Sprintf("    <language>%s</language>\n", escapeXML(lang)))
	}
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", generatedAt.UTC().Format(time.RFC1123Z)))
	for _, item := range items {
		pub := item.PublishDate
		if pub.IsZero() {
			pub = item.LastModified
		}
		if pub.IsZero() {
			pub = generatedAt
		}
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", escapeXML(item.URL)))
		builder.WriteString(fmt.Sprintf("      <guid isPermaLink=\"false\">%s</guid>\n", item.ID.String()))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", pub.UTC().Format(time.RFC1123Z)))
		if meta, ok := posts.CategoryInfo(item.Category); ok {
			builder.WriteString(fmt.Sprintf("      <category>%s</category>\n", escapeXML(meta.Title)))
		}
		if summary := normalizeWhitespace(item.DescriptionText()); summary != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", escapeXML(summary)))
		}
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString(`</rss>` + "\n")
	return builder.String()
}

func channelTitle(cfg Config) string {
	if title := strings.TrimSpace(cfg.Title); title != "" {
		return title
	}
	return baseURLWithFallback(cfg.BaseURL)
}

func channelDescription(cfg Config) string {
	if desc := strings.TrimSpace(cfg.Description); desc != "" {
		return desc
	}
	return "Latest updates"
}

func baseURLWithFallback(base string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		return "http://localhost"
	}
	return trimmed
}

func normalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}
