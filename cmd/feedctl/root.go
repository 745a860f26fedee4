package main

import (
	"os"

	"github.com/spf13/cobra"

	"feed_demo/internal/client"
)

const defaultServer = "http://localhost:8080"

type rootOptions struct {
	server string
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.server, nil)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "feedctl",
		Short:         "Inspect and change a running feed server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("FEEDCTL_SERVER")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", server, "feed server base URL (env FEEDCTL_SERVER)")

	cmd.AddCommand(
		newUsersCmd(opts),
		newPostsCmd(opts),
		newPostCmd(opts),
		newReactCmd(opts),
		newNotificationsCmd(opts),
		newPublishCmd(opts),
	)
	return cmd
}
