package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/shiian109/loungeup/internal/board"
	"github.com/shiian109/loungeup/internal/models"
)

// CredentialsRequest is the request body for register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the credentials request.
func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreatePostRequest is the request body for posting a question. Category is
// optional; when empty the board infers it from the question text.
type CreatePostRequest struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// Validate validates the post request. The question itself may be empty —
// the board treats that as a silent no-op, not an error.
func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category, validation.In(anySlice(models.Categories)...)),
	)
}

// AnswerRequest is the request body for answering a post.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// CategorizeRequest is the request body for the classifier preview.
type CategorizeRequest struct {
	Text string `json:"text"`
}

// SessionResponse reports the current session.
type SessionResponse struct {
	Username string `json:"username"`
	LoggedIn bool   `json:"logged_in"`
}

// PostListResponse wraps a filtered, sorted, truncated listing. Total is
// the match count before truncation.
type PostListResponse struct {
	Posts []board.PostView `json:"posts"`
	Total int              `json:"total"`
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
