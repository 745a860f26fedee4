package domain

import "errors"

const (
	TopicPosts         = "posts"
	TopicNotifications = "notifications"
)

const (
	EventSnapshot               = "snapshot"
	EventPostCreated            = "post.created"
	EventPostUpdated            = "post.updated"
	EventReactionAdded          = "reaction.added"
	EventNotificationsRefreshed = "notifications.refreshed"
)

const (
	CommandAddPost     = "post.add"
	CommandEditPost    = "post.edit"
	CommandAddReaction = "reaction.add"
)

var ErrInvalidCommandType = errors.New("invalid command type")

func IsValidTopic(value string) bool {
	return value == TopicPosts || value == TopicNotifications
}

func IsValidCommandType(value string) bool {
	switch value {
	case CommandAddPost, CommandEditPost, CommandAddReaction:
		return true
	default:
		return false
	}
}
