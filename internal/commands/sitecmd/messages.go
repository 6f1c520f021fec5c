package sitecmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	listPostsMessageType    = "site.posts.list"
	listProjectsMessageType = "site.projects.list"
	buildSitemapMessageType = "site.sitemap.build"
	buildFeedMessageType    = "site.feed.build"
	buildRobotsMessageType  = "site.robots.build"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// ListPostsCommand prints the visible posts, optionally narrowed to one
// category. An unknown category prints nothing.
type ListPostsCommand struct {
	Category string `json:"category,omitempty"`
	Format   string `json:"format,omitempty"`
}

// Type implements command.Message.
func (ListPostsCommand) Type() string { return listPostsMessageType }

func (cmd ListPostsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Category, validation.Length(0, 64)),
		validation.Field(&cmd.Format, validation.In(FormatText, FormatJSON)),
	)
}

// ListProjectsCommand prints the project buckets.
type ListProjectsCommand struct {
	Format string `json:"format,omitempty"`
}

func (ListProjectsCommand) Type() string { return listProjectsMessageType }

func (cmd ListProjectsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Format, validation.In(FormatText, FormatJSON)),
	)
}

// BuildSitemapCommand prints the sitemap as XML or as JSON entries.
type BuildSitemapCommand struct {
	Format string `json:"format,omitempty"`
}

func (BuildSitemapCommand) Type() string { return buildSitemapMessageType }

func (cmd BuildSitemapCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Format, validation.In(FormatXML, FormatJSON)),
	)
}

// BuildFeedCommand prints the RSS feed.
type BuildFeedCommand struct{}

func (BuildFeedCommand) Type() string { return buildFeedMessageType }

func (BuildFeedCommand) Validate() error { return nil }

// BuildRobotsCommand prints robots.txt.
type BuildRobotsCommand struct{}

func (BuildRobotsCommand) Type() string { return buildRobotsMessageType }

func (BuildRobotsCommand) Validate() error { return nil }
