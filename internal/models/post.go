package models

import (
	"slices"
	"time"
)

// Status classifies a post in the feed.
type Status string

const (
	StatusLost    Status = "lost"
	StatusFound   Status = "found"
	StatusClaimed Status = "claimed"
)

// Post is a single feed entry. A post is never deleted; likes and comments
// mutate it by whole-record replacement in the ledger.
type Post struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Status      Status    `json:"status" validate:"required,oneof=lost found claimed"`
	Item        string    `json:"item" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Phone       *string   `json:"phone"`
	Image       *string   `json:"image,omitempty"`
	Likes       []string  `json:"likes"`
	Comments    []Comment `json:"comments"`
	Timestamp   time.Time `json:"timestamp"`
}

// Comment is one entry in a post's comment sequence. Immutable once appended.
type Comment struct {
	User      string    `json:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Normalize resolves optional collections to non-nil empty slices so that
// read sites never have to nil-check and empty collections marshal as [].
// Called at construction and after loading from the store.
func (p *Post) Normalize() {
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}

// HasLiked reports whether username is in the post's like set.
func (p Post) HasLiked(username string) bool {
	return slices.Contains(p.Likes, username)
}

// WithLikeToggled returns a copy of the post with username removed from the
// like set if present, or appended if absent. The receiver is not modified.
func (p Post) WithLikeToggled(username string) Post {
	out := p
	if p.HasLiked(username) {
		likes := make([]string, 0, len(p.Likes)-1)
		for _, u := range p.Likes {
			if u != username {
				likes = append(likes, u)
			}
		}
		out.Likes = likes
	} else {
		out.Likes = append(slices.Clone(p.Likes), username)
	}
	return out
}

// WithComment returns a copy of the post with the comment appended. Prior
// comments are never reordered or removed.
func (p Post) WithComment(c Comment) Post {
	out := p
	out.Comments = append(slices.Clone(p.Comments), c)
	return out
}
