// Package board implements the Q&A board domain operations over the
// persisted document.
package board

import (
	"sync"

	"github.com/shiian109/loungeup/internal/apperr"
	"github.com/shiian109/loungeup/internal/classify"
	"github.com/shiian109/loungeup/internal/models"
	"github.com/shiian109/loungeup/internal/storage"
)

// DefaultDisplayLimit caps how many posts a listing returns.
const DefaultDisplayLimit = 50

// Service owns the in-memory board document and serializes every
// interaction: each operation runs to completion — mutate, then persist the
// whole document — before the next one is admitted. The document is loaded
// once at startup; concurrent processes sharing the file are last-write-wins
// (see storage.Watch).
type Service struct {
	mu    sync.Mutex
	doc   *storage.Document
	store *storage.Store
	clock Clock
	limit int
}

// NewService creates a board service over a loaded document.
func NewService(store *storage.Store, doc *storage.Document, clock Clock, displayLimit int) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	if displayLimit <= 0 {
		displayLimit = DefaultDisplayLimit
	}
	return &Service{doc: doc, store: store, clock: clock, limit: displayLimit}
}

// persist writes the full document to disk. Callers hold s.mu.
func (s *Service) persist() error {
	return s.store.Save(s.doc)
}

// sessionUser returns the logged-in username, or "" when nobody is.
// Callers hold s.mu.
func (s *Service) sessionUser() string {
	if s.doc.LoggedInUser == nil {
		return ""
	}
	return *s.doc.LoggedInUser
}

// Session returns the currently logged-in username, empty if none.
func (s *Service) Session() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionUser()
}

// Register creates a new user and logs them in. It fails with
// ErrDuplicateUser when the username is taken or either field is empty.
func (s *Service) Register(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == "" || password == "" {
		return apperr.ErrDuplicateUser
	}
	if _, exists := s.doc.Users[username]; exists {
		return apperr.ErrDuplicateUser
	}
	s.doc.Users[username] = models.User{Password: password}
	s.doc.LoggedInUser = &username
	return s.persist()
}

// Login sets the session when the credentials match an existing user.
// Any mismatch fails with ErrAuthFailure and leaves the session unset.
func (s *Service) Login(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.doc.Users[username]
	if !exists || user.Password != password {
		return apperr.ErrAuthFailure
	}
	s.doc.LoggedInUser = &username
	return s.persist()
}

// Logout clears the session unconditionally.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.LoggedInUser = nil
	return s.persist()
}

// CreatePost appends a new question authored by the session user. Empty
// text is a silent no-op: no post, no error. An empty category is inferred
// from the text. The post id is the post count at creation time.
func (s *Service) CreatePost(text, category string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.sessionUser()
	if author == "" {
		return nil, apperr.ErrNotAuthenticated
	}
	if text == "" {
		return nil, nil
	}
	if category == "" {
		category = classify.Categorize(text)
	}

	post := models.Post{
		User:     author,
		Time:     s.clock.Now().Format(models.TimeLayout),
		Question: text,
		Category: category,
		PostID:   len(s.doc.Posts),
	}
	s.doc.Posts = append(s.doc.Posts, post)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post at the given position. Only the author may
// delete it. The reaction and answer maps keyed by position are left
// untouched, so counters of later posts now attach to the wrong post — the
// board's documented positional-id hazard.
func (s *Service) DeletePost(postID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if postID < 0 || postID >= len(s.doc.Posts) {
		return apperr.ErrNotFound
	}
	if s.sessionUser() != s.doc.Posts[postID].User {
		return apperr.ErrForbidden
	}
	s.doc.Posts = append(s.doc.Posts[:postID], s.doc.Posts[postID+1:]...)
	return s.persist()
}

// AddAnswer appends an answer to a post. Empty text is a silent no-op.
func (s *Service) AddAnswer(postID int, text string) (*models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.sessionUser()
	if author == "" {
		return nil, apperr.ErrNotAuthenticated
	}
	if postID < 0 || postID >= len(s.doc.Posts) {
		return nil, apperr.ErrNotFound
	}
	if text == "" {
		return nil, nil
	}

	ans := models.Answer{
		Answer: text,
		Time:   s.clock.Now().Format(models.TimeLayout),
		User:   author,
	}
	s.doc.Answers[postID] = append(s.doc.Answers[postID], ans)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &ans, nil
}

// AddBookmark increments the post's bookmark counter by one. No dedup: the
// same user may bookmark repeatedly. Returns the new count.
func (s *Service) AddBookmark(postID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionUser() == "" {
		return 0, apperr.ErrNotAuthenticated
	}
	if postID < 0 || postID >= len(s.doc.Posts) {
		return 0, apperr.ErrNotFound
	}
	s.doc.BookmarkCounts[postID]++
	if err := s.persist(); err != nil {
		return 0, err
	}
	return s.doc.BookmarkCounts[postID], nil
}

// AddLike increments the like counter of one answer by one, unbounded, no
// dedup. Returns the new count.
func (s *Service) AddLike(postID, answerIndex int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionUser() == "" {
		return 0, apperr.ErrNotAuthenticated
	}
	if postID < 0 || postID >= len(s.doc.Posts) {
		return 0, apperr.ErrNotFound
	}
	if answerIndex < 0 || answerIndex >= len(s.doc.Answers[postID]) {
		return 0, apperr.ErrNotFound
	}
	if s.doc.AnswerGoodCounts[postID] == nil {
		s.doc.AnswerGoodCounts[postID] = map[int]int{}
	}
	s.doc.AnswerGoodCounts[postID][answerIndex]++
	if err := s.persist(); err != nil {
		return 0, err
	}
	return s.doc.AnswerGoodCounts[postID][answerIndex], nil
}
