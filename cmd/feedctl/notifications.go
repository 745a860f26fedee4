package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feed_demo/internal/model"
)

func newNotificationsCmd(opts *rootOptions) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := opts.client()
			var notifications []model.Notification
			if refresh {
				res, err := c.RefreshNotifications(cmd.Context())
				if err != nil {
					return err
				}
				if !res.Generated {
					fmt.Fprintln(cmd.ErrOrStderr(), "notifications already present, nothing generated")
				}
				notifications = res.Notifications
			} else {
				var err error
				if notifications, err = c.Notifications(cmd.Context()); err != nil {
					return err
				}
			}
			for _, n := range notifications {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", n.ID, n.Text)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "generate notifications first when there are none")
	return cmd
}
