package models

type LoginRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// PostInput is the body of both create and update. Absent tags mean no tags,
// an absent or blank excerpt means no excerpt.
type PostInput struct {
	Title     string   `json:"title" validate:"notblank,max=300"`
	Slug      string   `json:"slug" validate:"notblank,max=200"`
	Content   string   `json:"content" validate:"notblank"`
	Excerpt   string   `json:"excerpt" validate:"max=1000"`
	Tags      []string `json:"tags" validate:"max=50,dive,max=50"`
	Published bool     `json:"published"`
}
