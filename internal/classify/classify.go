// Package classify assigns a board category to free-form question text.
package classify

import (
	"strings"

	"github.com/shiian109/loungeup/internal/models"
)

// Keyword groups, checked in priority order. The first group with a hit
// decides the category; text matching none falls back to casual chat.
var (
	improvementKeywords  = []string{"改善", "提案", "効率", "業務"}
	knowledgeKeywords    = []string{"情報", "共有", "ナレッジ", "ドキュメント"}
	consultationKeywords = []string{"相談", "悩み", "困っ", "助け"}
)

// Categorize returns the category for text using case-insensitive substring
// matching. Empty text is casual chat.
func Categorize(text string) string {
	if text == "" {
		return models.CategoryCasual
	}
	t := strings.ToLower(text)
	switch {
	case containsAny(t, improvementKeywords):
		return models.CategoryImprovement
	case containsAny(t, knowledgeKeywords):
		return models.CategoryKnowledge
	case containsAny(t, consultationKeywords):
		return models.CategoryConsultation
	default:
		return models.CategoryCasual
	}
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
