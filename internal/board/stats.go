package board

import (
	"sort"

	"github.com/shiian109/loungeup/internal/models"
)

// UserStats recomputes a user's statistics with full linear scans over the
// current document. Nothing is cached; the caller re-derives on every
// render. An unknown username simply yields zeroes.
func (s *Service) UserStats(username string) models.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st models.UserStats

	for i, post := range s.doc.Posts {
		if post.User != username {
			continue
		}
		st.Posts++
		st.Bookmarks += s.doc.BookmarkCounts[i]
	}

	for _, answers := range s.doc.Answers {
		for _, a := range answers {
			if a.User == username {
				st.Answers++
			}
		}
	}

	// Likes received: walk the per-answer counters and credit the ones
	// whose answer at that position is authored by username.
	for i, counts := range s.doc.AnswerGoodCounts {
		answers := s.doc.Answers[i]
		for j, a := range answers {
			if a.User == username {
				st.Likes += counts[j]
			}
		}
	}

	return st
}

// CommunityStats returns board-wide totals and the most popular category.
// Ties on the popularity count go to the category that reached the count
// first in post order.
func (s *Service) CommunityStats() models.CommunityStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := models.CommunityStats{
		TotalPosts: len(s.doc.Posts),
		TotalUsers: len(s.doc.Users),
	}
	for _, answers := range s.doc.Answers {
		st.TotalAnswers += len(answers)
	}

	counts := map[string]int{}
	var order []string // categories in first-appearance order, for determinism
	for _, post := range s.doc.Posts {
		if _, seen := counts[post.Category]; !seen {
			order = append(order, post.Category)
		}
		counts[post.Category]++
	}
	best := 0
	for _, cat := range order {
		if counts[cat] > best {
			best = counts[cat]
			st.PopularCategory = cat
		}
	}

	return st
}

// Timeline buckets posts per calendar day and category — the data behind
// the board's timeline chart. Buckets are sorted by date, then category.
func (s *Service) Timeline() []models.TimelineBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	type key struct{ date, category string }
	counts := map[key]int{}
	for _, post := range s.doc.Posts {
		if len(post.Time) < 10 {
			continue
		}
		counts[key{post.Time[:10], post.Category}]++
	}

	buckets := make([]models.TimelineBucket, 0, len(counts))
	for k, n := range counts {
		buckets = append(buckets, models.TimelineBucket{Date: k.date, Category: k.category, Count: n})
	}
	sort.Slice(buckets, func(a, b int) bool {
		if buckets[a].Date != buckets[b].Date {
			return buckets[a].Date < buckets[b].Date
		}
		return buckets[a].Category < buckets[b].Category
	})
	return buckets
}
