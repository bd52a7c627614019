package storage

import "github.com/shiian109/loungeup/internal/models"

// Document is the root of the persisted board state. Its layout mirrors the
// on-disk JSON exactly: one object holding every collection, rewritten in
// full after each mutation.
//
// The numeric-keyed maps (answers, good_counts, bookmark_counts,
// answer_good_counts) are stored by JSON with string keys; encoding/json
// coerces them back to integers on load so they index the post sequence
// directly. A non-numeric key in one of these maps fails the load as a
// malformed document.
type Document struct {
	Users            map[string]models.User    `json:"users"`
	Posts            []models.Post             `json:"posts"`
	Answers          map[int][]models.Answer   `json:"answers"`
	GoodCounts       map[int]int               `json:"good_counts"` // legacy key, round-tripped untouched
	BookmarkCounts   map[int]int               `json:"bookmark_counts"`
	AnswerGoodCounts map[int]map[int]int       `json:"answer_good_counts"`
	LoggedInUser     *string                   `json:"logged_in_user"`
	UserPostState    map[string]any            `json:"user_post_state"` // reserved, round-tripped untouched
}

// NewDocument returns an empty document with every collection allocated.
func NewDocument() *Document {
	return &Document{
		Users:            map[string]models.User{},
		Posts:            []models.Post{},
		Answers:          map[int][]models.Answer{},
		GoodCounts:       map[int]int{},
		BookmarkCounts:   map[int]int{},
		AnswerGoodCounts: map[int]map[int]int{},
		UserPostState:    map[string]any{},
	}
}

// normalize re-allocates collections that deserialized as null so callers
// can index them without nil checks. Fields absent from the file keep the
// defaults NewDocument installed.
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = map[string]models.User{}
	}
	if d.Posts == nil {
		d.Posts = []models.Post{}
	}
	if d.Answers == nil {
		d.Answers = map[int][]models.Answer{}
	}
	if d.GoodCounts == nil {
		d.GoodCounts = map[int]int{}
	}
	if d.BookmarkCounts == nil {
		d.BookmarkCounts = map[int]int{}
	}
	if d.AnswerGoodCounts == nil {
		d.AnswerGoodCounts = map[int]map[int]int{}
	}
	if d.UserPostState == nil {
		d.UserPostState = map[string]any{}
	}
}
