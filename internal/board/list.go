package board

import (
	"sort"
	"strings"

	"github.com/shiian109/loungeup/internal/apperr"
	"github.com/shiian109/loungeup/internal/models"
)

// Listing filter values.
const (
	CategoryAll   = "All"
	SortLatest    = "latest"
	SortBookmarks = "bookmarks"
)

// PostView is a post addressed by its current position, enriched with its
// answers and reaction counters.
type PostView struct {
	ID int `json:"id"`
	models.Post
	Bookmarks int          `json:"bookmarks"`
	Answers   []AnswerView `json:"answers"`
}

// AnswerView is an answer with its current like counter.
type AnswerView struct {
	models.Answer
	Likes int `json:"likes"`
}

// ListPosts returns the filtered, sorted, truncated post listing and the
// total number of matches before truncation.
//
// The category filter keeps posts of exactly that category ("All" or ""
// keeps everything). The query keeps posts whose question contains it as a
// case-insensitive substring. Sort "bookmarks" orders by descending bookmark
// count, ties keeping original insertion order; anything else is latest
// first, i.e. the stored order reversed. limit <= 0 means the configured
// display cap.
func (s *Service) ListPosts(category, query, sortMode string, limit int) ([]PostView, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)

	var selected []int
	for i, post := range s.doc.Posts {
		if category != "" && category != CategoryAll && post.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(post.Question), q) {
			continue
		}
		selected = append(selected, i)
	}

	if sortMode == SortBookmarks {
		sort.SliceStable(selected, func(a, b int) bool {
			return s.doc.BookmarkCounts[selected[a]] > s.doc.BookmarkCounts[selected[b]]
		})
	} else {
		for a, b := 0, len(selected)-1; a < b; a, b = a+1, b-1 {
			selected[a], selected[b] = selected[b], selected[a]
		}
	}

	total := len(selected)
	if limit <= 0 {
		limit = s.limit
	}
	if len(selected) > limit {
		selected = selected[:limit]
	}

	views := make([]PostView, len(selected))
	for n, i := range selected {
		views[n] = s.postView(i)
	}
	return views, total
}

// GetPost returns one post by its current position.
func (s *Service) GetPost(postID int) (*PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if postID < 0 || postID >= len(s.doc.Posts) {
		return nil, apperr.ErrNotFound
	}
	v := s.postView(postID)
	return &v, nil
}

// postView materializes the view of the post at position i. Callers hold
// s.mu.
func (s *Service) postView(i int) PostView {
	answers := s.doc.Answers[i]
	likes := s.doc.AnswerGoodCounts[i]
	avs := make([]AnswerView, len(answers))
	for j, a := range answers {
		avs[j] = AnswerView{Answer: a, Likes: likes[j]}
	}
	return PostView{
		ID:        i,
		Post:      s.doc.Posts[i],
		Bookmarks: s.doc.BookmarkCounts[i],
		Answers:   avs,
	}
}
