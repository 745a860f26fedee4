package model

// Reactions maps a reaction kind to its counter.
type Reactions map[string]int

func (r Reactions) Clone() Reactions {
	out := make(Reactions, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Reactions Reactions `json:"reactions"`
}

// Clone returns a copy that shares no mutable state with p.
func (p Post) Clone() Post {
	p.Reactions = p.Reactions.Clone()
	return p
}
