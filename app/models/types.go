package models

// Post represents a blog post.
type Post struct {
	ID    uint32 `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Comment represents a comment attached to a post. The ID is only unique
// among the comments of the same post.
type Comment struct {
	ID     uint32 `json:"id"`
	PostID uint32 `json:"post_id"`
	Text   string `json:"text"`
}

// NewPost is the payload accepted by POST /api/posts. Fields are pointers so
// that a missing field can be told apart from an empty string.
type NewPost struct {
	Title *string `json:"title" validate:"required"`
	Body  *string `json:"body" validate:"required"`
}

// NewComment is the payload accepted by POST /api/comments.
type NewComment struct {
	PostID *uint32 `json:"post_id" validate:"required"`
	Text   *string `json:"text" validate:"required"`
}
