package site

import "github.com/nuwa-protocol/nuwa-web/internal/runtimeconfig"

var (
	ErrBaseURLInvalid            = runtimeconfig.ErrBaseURLInvalid
	ErrContentRootRequired       = runtimeconfig.ErrContentRootRequired
	ErrProjectsDirRequired       = runtimeconfig.ErrProjectsDirRequired
	ErrPostsDirRequired          = runtimeconfig.ErrPostsDirRequired
	ErrProjectDescriptorRequired = runtimeconfig.ErrProjectDescriptorRequired
	ErrPostDescriptorRequired    = runtimeconfig.ErrPostDescriptorRequired
	ErrImageExtensionsRequired   = runtimeconfig.ErrImageExtensionsRequired
	ErrSitemapPriorityInvalid    = runtimeconfig.ErrSitemapPriorityInvalid
	ErrSitemapChangeFreqInvalid  = runtimeconfig.ErrSitemapChangeFreqInvalid
	ErrLoggingProviderRequired   = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	SiteConfig     = runtimeconfig.SiteConfig
	ContentConfig  = runtimeconfig.ContentConfig
	ProjectsConfig = runtimeconfig.ProjectsConfig
	PostsConfig    = runtimeconfig.PostsConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	SitemapConfig  = runtimeconfig.SitemapConfig
	StaticPage     = runtimeconfig.StaticPage
	FeedConfig     = runtimeconfig.FeedConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
