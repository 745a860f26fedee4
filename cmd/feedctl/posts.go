package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"feed_demo/internal/domain"
	"feed_demo/internal/http/dto"
	"feed_demo/internal/service/feed"
)

func newPostsCmd(opts *rootOptions) *cobra.Command {
	var author string
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts in feed order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := opts.client()
			var posts []feed.PostView
			if author != "" {
				res, err := c.UserPosts(cmd.Context(), author)
				if err != nil {
					return err
				}
				posts = res.Posts
			} else {
				var err error
				if posts, err = c.Posts(cmd.Context()); err != nil {
					return err
				}
			}
			for _, p := range posts {
				printPost(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "only posts by this user id")
	return cmd
}

func newPostCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create or edit posts",
	}
	cmd.AddCommand(newPostAddCmd(opts), newPostEditCmd(opts))
	return cmd
}

func newPostAddCmd(opts *rootOptions) *cobra.Command {
	var req dto.CreatePostRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := opts.client().AddPost(cmd.Context(), req)
			if err != nil {
				return err
			}
			printPost(cmd.OutOrStdout(), created)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "post title")
	cmd.Flags().StringVar(&req.AuthorID, "author", "", "author user id")
	cmd.Flags().StringVar(&req.Content, "content", "", "post body")
	for _, name := range []string{"title", "author", "content"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newPostEditCmd(opts *rootOptions) *cobra.Command {
	var req dto.EditPostRequest
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace a post's title and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := opts.client().EditPost(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			printPost(cmd.OutOrStdout(), updated)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "new title")
	cmd.Flags().StringVar(&req.Content, "content", "", "new body")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newReactCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "react ID KIND",
		Short:     "Add a reaction to a post",
		Long:      "Add a reaction to a post. KIND is one of: " + strings.Join(domain.ReactionKinds, ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: domain.ReactionKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := opts.client().AddReaction(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printPost(cmd.OutOrStdout(), updated)
			return nil
		},
	}
}

func printPost(w io.Writer, p feed.PostView) {
	counts := make([]string, 0, len(domain.ReactionKinds))
	for _, kind := range domain.ReactionKinds {
		counts = append(counts, fmt.Sprintf("%s=%d", kind, p.Reactions[kind]))
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.AuthorName, p.Title, strings.Join(counts, " "))
}
