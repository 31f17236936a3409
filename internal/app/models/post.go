package models

import "time"

// Post defines a forum entry. Comments are append-only.
type Post struct {
	ID        int64        `json:"id" db:"id"`
	Title     string       `json:"title,omitempty" db:"title"`
	Content   string       `json:"content" db:"content"`
	Category  PostCategory `json:"category" db:"category"`
	Author    int64        `json:"author" db:"author"`
	Likes     []int64      `json:"likes" db:"likes"` // Liker user ids (toggled membership)
	Comments  []Comment    `json:"comments"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`

	// Related entities
	AuthorRef *UserRef `json:"authorRef,omitempty"`
}

// Comment is a single entry in a post's ordered comment list.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	User      int64     `json:"user" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// HasLike reports whether userID currently likes the post.
func (p *Post) HasLike(userID int64) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
