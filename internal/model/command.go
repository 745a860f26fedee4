package model

// Command is a queued feed mutation.
type Command struct {
	Type     string `json:"type"`
	PostID   string `json:"post_id,omitempty"`
	AuthorID string `json:"author_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	Reaction string `json:"reaction,omitempty"`
}
