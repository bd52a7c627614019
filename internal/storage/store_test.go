package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shiian109/loungeup/internal/apperr"
	"github.com/shiian109/loungeup/internal/models"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "board.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t)
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Users) != 0 || len(doc.Posts) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
	if doc.LoggedInUser != nil {
		t.Errorf("logged_in_user = %v, want nil", *doc.LoggedInUser)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	doc := NewDocument()
	doc.Users["アリス"] = models.User{Password: "ひみつ"}
	doc.Posts = append(doc.Posts, models.Post{
		User:     "アリス",
		Time:     "2026-08-30 09:15",
		Question: "業務を改善したい",
		Category: models.CategoryImprovement,
		PostID:   0,
	})
	doc.Answers[0] = []models.Answer{{Answer: "賛成です", Time: "2026-08-30 09:20", User: "ボブ"}}
	doc.BookmarkCounts[0] = 3
	doc.AnswerGoodCounts[0] = map[int]int{0: 2}
	user := "アリス"
	doc.LoggedInUser = &user

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Users["アリス"].Password != "ひみつ" {
		t.Errorf("user password = %q", got.Users["アリス"].Password)
	}
	if len(got.Posts) != 1 || got.Posts[0].Question != "業務を改善したい" {
		t.Errorf("posts = %+v", got.Posts)
	}
	if got.BookmarkCounts[0] != 3 {
		t.Errorf("bookmark_counts[0] = %d, want 3", got.BookmarkCounts[0])
	}
	if got.AnswerGoodCounts[0][0] != 2 {
		t.Errorf("answer_good_counts[0][0] = %d, want 2", got.AnswerGoodCounts[0][0])
	}
	if got.LoggedInUser == nil || *got.LoggedInUser != "アリス" {
		t.Errorf("logged_in_user = %v", got.LoggedInUser)
	}
	if len(got.Answers[0]) != 1 || got.Answers[0][0].User != "ボブ" {
		t.Errorf("answers = %+v", got.Answers)
	}
}

func TestSaveKeepsNonASCIIReadable(t *testing.T) {
	s := tempStore(t)
	doc := NewDocument()
	doc.Posts = append(doc.Posts, models.Post{User: "u", Question: "雑談 <開発>", Category: models.CategoryCasual})
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(raw)
	if !strings.Contains(text, "雑談 <開発>") {
		t.Errorf("document does not carry the text verbatim:\n%s", text)
	}
	if !strings.Contains(text, "\n  ") {
		t.Error("document is not indented")
	}
}

func TestLoadCoercesNumericKeys(t *testing.T) {
	// The serialization format stores map keys as strings; they must come
	// back as integers that index the post sequence.
	s := tempStore(t)
	raw := `{
  "users": {"alice": {"password": "x"}},
  "posts": [{"user": "alice", "time": "2026-08-30 10:00", "question": "q", "category": "雑談・息抜き", "postId": 0}],
  "answers": {"0": [{"answer": "a", "time": "2026-08-30 10:05", "user": "alice"}]},
  "bookmark_counts": {"0": 5},
  "answer_good_counts": {"0": {"0": 1}},
  "logged_in_user": null
}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.BookmarkCounts[0] != 5 {
		t.Errorf("bookmark_counts[0] = %d, want 5", doc.BookmarkCounts[0])
	}
	if doc.AnswerGoodCounts[0][0] != 1 {
		t.Errorf("answer_good_counts[0][0] = %d, want 1", doc.AnswerGoodCounts[0][0])
	}
	if len(doc.Answers[0]) != 1 {
		t.Errorf("answers[0] = %+v", doc.Answers[0])
	}
	// Fields absent from the file keep their defaults.
	if doc.GoodCounts == nil || doc.UserPostState == nil {
		t.Error("absent fields should fall back to allocated defaults")
	}
}

func TestLoadMalformedDocumentFatal(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load()
	if !errors.Is(err, apperr.ErrMalformedDocument) {
		t.Errorf("err = %v, want ErrMalformedDocument", err)
	}
}

func TestLoadNonNumericKeyIsMalformed(t *testing.T) {
	s := tempStore(t)
	raw := `{"bookmark_counts": {"not-a-number": 1}}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); !errors.Is(err, apperr.ErrMalformedDocument) {
		t.Errorf("err = %v, want ErrMalformedDocument", err)
	}
}

func TestSaveAtomicNoLeftoverTemp(t *testing.T) {
	s := tempStore(t)
	doc := NewDocument()
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(doc); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(s.Path()), ".loungeup-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestDoubleRoundTripStable(t *testing.T) {
	s := tempStore(t)
	doc := NewDocument()
	doc.Users["u"] = models.User{Password: "p"}
	doc.Posts = append(doc.Posts, models.Post{User: "u", Time: "2026-08-30 11:00", Question: "q", Category: models.CategoryCasual})
	doc.BookmarkCounts[0] = 7

	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(loaded); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("round trip changed the document:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}
