package domain

import "time"

// Post is one top-level forum entry. Posts are append-only and identified
// by their position in the store; there is no durable ID.
type Post struct {
	Author    string
	Content   string
	CreatedAt time.Time
	Replies   []Reply
}

// Reply belongs to exactly one post. Replies are appended, never edited
// or deleted.
type Reply struct {
	Author    string
	Content   string
	CreatedAt time.Time
}

// Clone returns a copy of the post whose reply slice is independent of
// the receiver's.
func (p Post) Clone() Post {
	out := p
	if p.Replies != nil {
		out.Replies = make([]Reply, len(p.Replies))
		copy(out.Replies, p.Replies)
	}
	return out
}
