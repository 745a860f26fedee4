package domain

import "errors"

const (
	ReactionLike = "like"
	ReactionLove = "love"
	ReactionHaha = "haha"
	ReactionWow  = "wow"
	ReactionSad  = "sad"
)

var (
	ErrUnknownReaction  = errors.New("unknown reaction")
	ErrReactionDisabled = errors.New("reaction disabled")
)

// ReactionKinds lists every reaction in display order.
var ReactionKinds = []string{ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad}

func IsValidReaction(value string) bool {
	switch value {
	case ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad:
		return true
	default:
		return false
	}
}

// IsDisabledReaction reports whether value is shown but cannot be applied.
func IsDisabledReaction(value string) bool {
	return value == ReactionSad
}
