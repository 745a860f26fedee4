package domain

import (
	"errors"
	"fmt"

	"feed_demo/internal/model"
)

var ErrInvalidCommand = errors.New("invalid command")

// ValidateCommand checks that cmd carries the fields its type needs.
func ValidateCommand(cmd model.Command) error {
	if !IsValidCommandType(cmd.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidCommandType, cmd.Type)
	}
	var missing string
	switch cmd.Type {
	case CommandAddPost:
		switch {
		case cmd.Title == "":
			missing = "title"
		case cmd.AuthorID == "":
			missing = "author_id"
		case cmd.Content == "":
			missing = "content"
		}
	case CommandEditPost:
		switch {
		case cmd.PostID == "":
			missing = "post_id"
		case cmd.Title == "":
			missing = "title"
		case cmd.Content == "":
			missing = "content"
		}
	case CommandAddReaction:
		switch {
		case cmd.PostID == "":
			missing = "post_id"
		case cmd.Reaction == "":
			missing = "reaction"
		}
	}
	if missing != "" {
		return fmt.Errorf("%w: %s requires %s", ErrInvalidCommand, cmd.Type, missing)
	}
	return nil
}
