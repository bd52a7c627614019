package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shiian109/loungeup/internal/apperr"
	"github.com/shiian109/loungeup/internal/board"
	"github.com/shiian109/loungeup/internal/classify"
	"github.com/shiian109/loungeup/internal/models"
)

// Handler holds API route handlers.
type Handler struct {
	svc *board.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *board.Service) *Handler {
	return &Handler{svc: svc}
}

// writeBoardError maps the board's sentinel errors to HTTP responses.
func writeBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrDuplicateUser):
		writeJSON(w, http.StatusConflict, errorBody("username already taken"))
	case errors.Is(err, apperr.ErrAuthFailure):
		writeJSON(w, http.StatusUnauthorized, errorBody("authentication failed"))
	case errors.Is(err, apperr.ErrNotAuthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody("login required"))
	case errors.Is(err, apperr.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody("forbidden"))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	default:
		slog.Error("board operation failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	return true
}

// postID extracts the {postID} route parameter. The second return is false
// when the parameter is not a number (a 400 has been written already).
func postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("post id must be a number"))
		return 0, false
	}
	return id, true
}

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.svc.Register(req.Username, req.Password); err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, SessionResponse{Username: req.Username, LoggedIn: true})
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := h.svc.Login(req.Username, req.Password); err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{Username: req.Username, LoggedIn: true})
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(); err != nil {
		writeBoardError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /auth/session.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	user := h.svc.Session()
	writeJSON(w, http.StatusOK, SessionResponse{Username: user, LoggedIn: user != ""})
}

// ListPosts handles GET /posts with category, q, sort, and limit params.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	posts, total := h.svc.ListPosts(q.Get("category"), q.Get("q"), q.Get("sort"), limit)
	if posts == nil {
		posts = []board.PostView{}
	}
	writeJSON(w, http.StatusOK, PostListResponse{Posts: posts, Total: total})
}

// CreatePost handles POST /posts. An empty question is accepted and does
// nothing — 204, mirroring the board's silent no-op.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	post, err := h.svc.CreatePost(req.Question, req.Category)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	if post == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// GetPost handles GET /posts/{postID}.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.GetPost(id)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DeletePost handles DELETE /posts/{postID}.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePost(id); err != nil {
		writeBoardError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddAnswer handles POST /posts/{postID}/answers. An empty answer is a
// silent no-op — 204.
func (h *Handler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	var req AnswerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ans, err := h.svc.AddAnswer(id, req.Answer)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	if ans == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, ans)
}

// AddBookmark handles POST /posts/{postID}/bookmark.
func (h *Handler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	count, err := h.svc.AddBookmark(id)
	if err != nil {
		writeBoardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"bookmarks": count})
}

// AddLike handles POST /posts/{postID}/answers/{answerIndex}/like.
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "answerIndex"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("answer index must be a number"))
		return
	}
	count, likeErr := h.svc.AddLike(id, idx)
	if likeErr != nil {
		writeBoardError(w, likeErr)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"likes": count})
}

// UserStats handles GET /users/{username}/stats. Unknown users yield
// zeroed stats, not 404 — the board recomputes from whatever exists.
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	writeJSON(w, http.StatusOK, h.svc.UserStats(username))
}

// CommunityStats handles GET /stats.
func (h *Handler) CommunityStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.CommunityStats())
}

// Timeline handles GET /timeline.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	buckets := h.svc.Timeline()
	if buckets == nil {
		buckets = []models.TimelineBucket{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"timeline": buckets})
}

// Categories handles GET /categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": models.Categories})
}

// Categorize handles POST /categorize — the classifier preview used by the
// composer before submitting.
func (h *Handler) Categorize(w http.ResponseWriter, r *http.Request) {
	var req CategorizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"category": classify.Categorize(req.Text)})
}
