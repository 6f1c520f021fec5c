package sitecmd

import (
	"errors"
	"io"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/nuwa-protocol/nuwa-web/internal/commands"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract used when wiring
// handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers built by RegisterSiteCommands.
type HandlerSet struct {
	Posts    *ListPostsHandler
	Projects *ListProjectsHandler
	Sitemap  *BuildSitemapHandler
	Feed     *BuildFeedHandler
	Robots   *BuildRobotsHandler
}

// RegisterSiteCommands builds the site handlers writing to out and registers
// them with reg when it is non-nil.
func RegisterSiteCommands(reg CommandRegistry, site Site, out io.Writer, provider interfaces.LoggerProvider) (*HandlerSet, error) {
	if site == nil {
		return nil, errors.New("site command registration: site is nil")
	}
	if out == nil {
		out = io.Discard
	}

	logger := commands.CommandLogger(provider, "site")
	set := &HandlerSet{
		Posts:    NewListPostsHandler(site, out, logger),
		Projects: NewListProjectsHandler(site, out, logger),
		Sitemap:  NewBuildSitemapHandler(site, out, logger),
		Feed:     NewBuildFeedHandler(site, out, logger),
		Robots:   NewBuildRobotsHandler(site, out, logger),
	}

	if reg != nil {
		for _, handler := range []any{set.Posts, set.Projects, set.Sitemap, set.Feed, set.Robots} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

// Subscribe attaches every handler to the go-command dispatcher. The returned
// function detaches them again.
func (s *HandlerSet) Subscribe() func() {
	unsubscribers := []func(){
		dispatcher.SubscribeCommand(s.Posts).Unsubscribe,
		dispatcher.SubscribeCommand(s.Projects).Unsubscribe,
		dispatcher.SubscribeCommand(s.Sitemap).Unsubscribe,
		dispatcher.SubscribeCommand(s.Feed).Unsubscribe,
		dispatcher.SubscribeCommand(s.Robots).Unsubscribe,
	}
	return func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}
}
