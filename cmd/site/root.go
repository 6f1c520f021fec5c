package main

import (
	"os"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/spf13/cobra"

	site "github.com/nuwa-protocol/nuwa-web"
	"github.com/nuwa-protocol/nuwa-web/internal/commands/sitecmd"
)

type cliOptions struct {
	configFile string
	dir        string
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "site",
		Short: "Inspect and render the nuwa content tree",
		Long: `site reads the projects and posts under the content root and prints
listings, the sitemap, the RSS feed or robots.txt.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is <dir>/site.yaml)")
	root.PersistentFlags().StringVar(&opts.dir, "dir", ".", "directory holding the content root")

	root.AddCommand(
		newPostsCommand(opts),
		newProjectsCommand(opts),
		newSitemapCommand(opts),
		newFeedCommand(opts),
		newRobotsCommand(opts),
	)
	return root
}

func newPostsCommand(opts *cliOptions) *cobra.Command {
	msg := sitecmd.ListPostsCommand{}
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List published posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatchSiteCommand(cmd, opts, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Category, "category", "", "only list posts in this category")
	cmd.Flags().StringVar(&msg.Format, "format", sitecmd.FormatText, "output format (text, json)")
	return cmd
}

func newProjectsCommand(opts *cliOptions) *cobra.Command {
	msg := sitecmd.ListProjectsCommand{}
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects grouped by tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatchSiteCommand(cmd, opts, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Format, "format", sitecmd.FormatText, "output format (text, json)")
	return cmd
}

func newSitemapCommand(opts *cliOptions) *cobra.Command {
	msg := sitecmd.BuildSitemapCommand{}
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print the sitemap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatchSiteCommand(cmd, opts, msg)
		},
	}
	cmd.Flags().StringVar(&msg.Format, "format", sitecmd.FormatXML, "output format (xml, json)")
	return cmd
}

func newFeedCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Print the RSS feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatchSiteCommand(cmd, opts, sitecmd.BuildFeedCommand{})
		},
	}
}

func newRobotsCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "robots",
		Short: "Print robots.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatchSiteCommand(cmd, opts, sitecmd.BuildRobotsCommand{})
		},
	}
}

// dispatchSiteCommand builds the module for this invocation, subscribes the
// site handlers and dispatches msg through go-command.
func dispatchSiteCommand[T command.Message](cmd *cobra.Command, opts *cliOptions, msg T) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	provider, err := site.NewLoggerProvider(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	module, err := site.New(cfg,
		site.WithFS(os.DirFS(opts.dir)),
		site.WithLoggerProvider(provider),
	)
	if err != nil {
		return err
	}

	handlers, err := sitecmd.RegisterSiteCommands(nil, module, cmd.OutOrStdout(), provider)
	if err != nil {
		return err
	}
	unsubscribe := handlers.Subscribe()
	defer unsubscribe()

	return dispatcher.Dispatch(cmd.Context(), msg)
}
