package board_test

import (
	"fmt"
	"testing"

	"github.com/shiian109/loungeup/internal/board"
	"github.com/shiian109/loungeup/internal/models"
	"github.com/shiian109/loungeup/internal/testutil"
)

func seededBoard(t *testing.T) *board.Service {
	t.Helper()
	svc := testutil.TestService(t)
	registered(t, svc, "alice")
	posts := []struct {
		question string
		category string
	}{
		{"業務フローの見直し", models.CategoryImprovement},
		{"新人向けドキュメントの場所", models.CategoryKnowledge},
		{"今日のランチどうする", models.CategoryCasual},
		{"評価面談が不安", models.CategoryConsultation},
		{"会議の効率を上げたい", models.CategoryImprovement},
	}
	for _, p := range posts {
		if _, err := svc.CreatePost(p.question, p.category); err != nil {
			t.Fatal(err)
		}
	}
	return svc
}

func questions(views []board.PostView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Question
	}
	return out
}

func TestListPostsLatestFirst(t *testing.T) {
	svc := seededBoard(t)
	views, total := svc.ListPosts(board.CategoryAll, "", board.SortLatest, 0)
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	got := questions(views)
	if got[0] != "会議の効率を上げたい" || got[4] != "業務フローの見直し" {
		t.Errorf("latest-first order = %v", got)
	}
}

func TestListPostsCategoryFilter(t *testing.T) {
	svc := seededBoard(t)
	views, total := svc.ListPosts(models.CategoryImprovement, "", board.SortLatest, 0)
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	for _, v := range views {
		if v.Category != models.CategoryImprovement {
			t.Errorf("category = %q", v.Category)
		}
	}

	// Empty filter behaves like "All".
	if _, total := svc.ListPosts("", "", board.SortLatest, 0); total != 5 {
		t.Errorf("empty filter total = %d, want 5", total)
	}
}

func TestListPostsSearchSubstring(t *testing.T) {
	svc := seededBoard(t)
	_, total := svc.ListPosts(board.CategoryAll, "ドキュメント", board.SortLatest, 0)
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
	// Case-insensitive on ASCII.
	registered(t, svc, "casey")
	if _, err := svc.CreatePost("Weekly REPORT about nothing", models.CategoryCasual); err != nil {
		t.Fatal(err)
	}
	if _, total := svc.ListPosts(board.CategoryAll, "report", board.SortLatest, 0); total != 1 {
		t.Errorf("case-insensitive total = %d, want 1", total)
	}
	// Empty query filters nothing.
	if _, total := svc.ListPosts(board.CategoryAll, "", board.SortLatest, 0); total != 6 {
		t.Errorf("empty query total = %d, want 6", total)
	}
}

func TestListPostsBookmarkSortStable(t *testing.T) {
	svc := seededBoard(t)

	// Two bookmarks on post 3, one on post 1; posts 0, 2, 4 tie at zero.
	for i := 0; i < 2; i++ {
		if _, err := svc.AddBookmark(3); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.AddBookmark(1); err != nil {
		t.Fatal(err)
	}

	views, _ := svc.ListPosts(board.CategoryAll, "", board.SortBookmarks, 0)
	got := questions(views)
	want := []string{
		"評価面談が不安",           // 2 bookmarks
		"新人向けドキュメントの場所", // 1 bookmark
		"業務フローの見直し",        // ties keep insertion order
		"今日のランチどうする",
		"会議の効率を上げたい",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bookmark order = %v, want %v", got, want)
		}
	}
}

func TestListPostsTruncation(t *testing.T) {
	svc := testutil.TestService(t)
	registered(t, svc, "alice")
	for i := 0; i < 60; i++ {
		if _, err := svc.CreatePost(fmt.Sprintf("post %d", i), models.CategoryCasual); err != nil {
			t.Fatal(err)
		}
	}

	views, total := svc.ListPosts(board.CategoryAll, "", board.SortLatest, 0)
	if total != 60 {
		t.Errorf("total = %d, want 60", total)
	}
	if len(views) != board.DefaultDisplayLimit {
		t.Errorf("len = %d, want display cap %d", len(views), board.DefaultDisplayLimit)
	}
	if views[0].Question != "post 59" {
		t.Errorf("first = %q", views[0].Question)
	}

	if views, _ := svc.ListPosts(board.CategoryAll, "", board.SortLatest, 10); len(views) != 10 {
		t.Errorf("explicit limit len = %d, want 10", len(views))
	}
}

func TestGetPostViews(t *testing.T) {
	svc := seededBoard(t)
	if _, err := svc.AddAnswer(2, "回答その一"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddLike(2, 0); err != nil {
		t.Fatal(err)
	}

	v, err := svc.GetPost(2)
	if err != nil {
		t.Fatal(err)
	}
	if v.ID != 2 || v.Question != "今日のランチどうする" {
		t.Errorf("view = %+v", v)
	}
	if len(v.Answers) != 1 || v.Answers[0].Likes != 1 {
		t.Errorf("answers = %+v", v.Answers)
	}

	if _, err := svc.GetPost(99); err == nil {
		t.Error("expected error for out-of-range post")
	}
}
