package models

import (
	"time"

	"github.com/google/uuid"
)

type ForumPost struct {
	ID        uuid.UUID `db:"id"`
	AuthorID  uuid.UUID `db:"author_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Upvotes   int       `db:"upvotes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ForumReply references its parent reply by ID only; nesting is resolved
// by lookup, never as an owning pointer graph.
type ForumReply struct {
	ID            uuid.UUID  `db:"id"`
	PostID        uuid.UUID  `db:"post_id"`
	AuthorID      uuid.UUID  `db:"author_id"`
	ParentReplyID *uuid.UUID `db:"parent_reply_id"`
	Content       string     `db:"content"`
	Upvotes       int        `db:"upvotes"`
	CreatedAt     time.Time  `db:"created_at"`
}
