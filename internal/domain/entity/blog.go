package entity

// BlogPost content is a rich HTML string produced by the back-office editor.
// Slug is derived from the title and must be unique among posts; the check
// happens before any store write, the store itself enforces nothing.
type BlogPost struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Published   bool   `json:"published"`
	PublishedAt int64  `json:"publishedAt,omitempty"`
	UpdatedAt   int64  `json:"updatedAt"`
	Views       int    `json:"views"`
}
