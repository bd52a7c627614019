// Package models defines the domain types for the LoungeUp board.
package models

// The four fixed post categories. Order matters: it is the order the
// composer offers them and the tie-break order for popularity stats.
const (
	CategoryImprovement  = "業務改善・提案"
	CategoryKnowledge    = "情報共有・ナレッジ"
	CategoryCasual       = "雑談・息抜き"
	CategoryConsultation = "匿名ならではの相談"
)

// Categories lists every valid post category.
var Categories = []string{
	CategoryImprovement,
	CategoryKnowledge,
	CategoryCasual,
	CategoryConsultation,
}

// TimeLayout is the minute-precision timestamp format used throughout the
// persisted document.
const TimeLayout = "2006-01-02 15:04"

// User is a registered account. The password is stored verbatim; the board
// is a single-tenant study artifact and does no credential hardening.
type User struct {
	Password string `json:"password"`
}

// Post is a question submitted by an authenticated user.
//
// PostID is assigned at creation time as the then-current length of the post
// sequence and is never rewritten. All lookups key by the post's current
// position, so after a deletion the stored PostID of later posts goes stale
// while their effective id shifts down by one.
type Post struct {
	User     string `json:"user"`
	Time     string `json:"time"`
	Question string `json:"question"`
	Category string `json:"category"`
	PostID   int    `json:"postId"`
}

// Answer is a reply to a specific post. Answers are append-only.
type Answer struct {
	Answer string `json:"answer"`
	Time   string `json:"time"`
	User   string `json:"user"`
}

// UserStats aggregates a single user's activity and received reactions.
type UserStats struct {
	Posts     int `json:"posts"`
	Answers   int `json:"answers"`
	Bookmarks int `json:"bookmarks"`
	Likes     int `json:"likes"`
}

// CommunityStats aggregates board-wide totals.
type CommunityStats struct {
	TotalPosts      int    `json:"total_posts"`
	TotalUsers      int    `json:"total_users"`
	TotalAnswers    int    `json:"total_answers"`
	PopularCategory string `json:"popular_category,omitempty"`
}

// TimelineBucket counts the posts of one category on one calendar day.
type TimelineBucket struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ValidCategory reports whether c is one of the four fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
