package models

import (
	"time"

	"github.com/lib/pq"
)

type Admin struct {
	AdminID      string    `json:"adminId" db:"admin_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID      string         `json:"id" db:"post_id"`
	Title       string         `json:"title" db:"title"`
	Slug        string         `json:"slug" db:"slug"`
	Content     string         `json:"content" db:"content"`
	Excerpt     *string        `json:"excerpt,omitempty" db:"excerpt"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	Published   bool           `json:"published" db:"published"`
	ReadingTime int            `json:"readingTime" db:"reading_time"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

// SessionClaim is the identity carried inside a session token.
type SessionClaim struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type PostStats struct {
	Total     int `json:"total" db:"total"`
	Published int `json:"published" db:"published"`
	Drafts    int `json:"drafts" db:"drafts"`
}

type Image struct {
	ImageID     string    `json:"imageId" db:"image_id"`
	ObjectName  string    `json:"-" db:"object_name"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	ContentType string    `json:"contentType" db:"content_type"`
	Size        int64     `json:"size" db:"size"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
