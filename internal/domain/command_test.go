package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"feed_demo/internal/model"
)

func TestValidateCommand(t *testing.T) {
	t.Run("valid commands", func(t *testing.T) {
		valid := []model.Command{
			{Type: CommandAddPost, Title: "t", AuthorID: "1", Content: "c"},
			{Type: CommandEditPost, PostID: "101", Title: "t", Content: "c"},
			{Type: CommandAddReaction, PostID: "101", Reaction: ReactionLike},
			// Disabled reactions are rejected by the store, not here.
			{Type: CommandAddReaction, PostID: "101", Reaction: ReactionSad},
		}
		for _, cmd := range valid {
			require.NoError(t, ValidateCommand(cmd), "command %+v", cmd)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		err := ValidateCommand(model.Command{Type: "post.delete", PostID: "101"})
		require.ErrorIs(t, err, ErrInvalidCommandType)
	})

	t.Run("missing fields", func(t *testing.T) {
		invalid := []model.Command{
			{Type: CommandAddPost, AuthorID: "1", Content: "c"},
			{Type: CommandAddPost, Title: "t", Content: "c"},
			{Type: CommandEditPost, Title: "t", Content: "c"},
			{Type: CommandEditPost, PostID: "101", Title: "t"},
			{Type: CommandAddReaction, Reaction: ReactionLike},
			{Type: CommandAddReaction, PostID: "101"},
		}
		for _, cmd := range invalid {
			require.ErrorIs(t, ValidateCommand(cmd), ErrInvalidCommand, "command %+v", cmd)
		}
	})
}
