package domain

import "feed_demo/internal/model"

// NewReactions returns a counter set with every reaction kind at zero.
func NewReactions() model.Reactions {
	r := make(model.Reactions, len(ReactionKinds))
	for _, kind := range ReactionKinds {
		r[kind] = 0
	}
	return r
}

// Seed returns the state the feed starts with when nothing was persisted.
func Seed() model.Snapshot {
	return model.Snapshot{
		Users: []model.User{
			{ID: "1", Name: "Alice"},
			{ID: "2", Name: "Bob"},
			{ID: "3", Name: "Charlie"},
		},
		Posts: []model.Post{
			{
				ID:        "101",
				AuthorID:  "1",
				Title:     "Alice's First Post",
				Content:   "Hello from Alice!",
				Reactions: NewReactions(),
			},
			{
				ID:        "102",
				AuthorID:  "2",
				Title:     "Bob's First Post",
				Content:   "Bob's first post.",
				Reactions: NewReactions(),
			},
			{
				ID:        "103",
				AuthorID:  "3",
				Title:     "Charlie's Post",
				Content:   "Post by Charlie.",
				Reactions: NewReactions(),
			},
		},
		Notifications: []model.Notification{},
	}
}
