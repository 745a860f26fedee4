package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feed_demo/internal/domain"
	"feed_demo/internal/model"
)

func newPublishCmd(opts *rootOptions) *cobra.Command {
	var command model.Command
	cmd := &cobra.Command{
		Use:   "publish TYPE",
		Short: "Queue a command for asynchronous processing",
		Long: fmt.Sprintf("Queue a command through the server's message broker. TYPE is one of: %s, %s, %s.",
			domain.CommandAddPost, domain.CommandEditPost, domain.CommandAddReaction),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command.Type = args[0]
			if err := domain.ValidateCommand(command); err != nil {
				return err
			}
			if err := opts.client().PublishCommand(cmd.Context(), command); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "queued", command.Type)
			return nil
		},
	}
	cmd.Flags().StringVar(&command.PostID, "post", "", "target post id")
	cmd.Flags().StringVar(&command.AuthorID, "author", "", "author user id")
	cmd.Flags().StringVar(&command.Title, "title", "", "post title")
	cmd.Flags().StringVar(&command.Content, "content", "", "post body")
	cmd.Flags().StringVar(&command.Reaction, "reaction", "", "reaction kind")
	return cmd
}
