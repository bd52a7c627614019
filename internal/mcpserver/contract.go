package mcpserver

// PostingGuide describes how the board behaves so LLM consumers post
// well-formed content.
const PostingGuide = `# LoungeUp Posting Guide

LoungeUp is a community Q&A board. Users post questions tagged with one of
four fixed categories; others answer and react.

## Categories

Exactly these four, no others:

1. 業務改善・提案 — business improvement and proposals
2. 情報共有・ナレッジ — information sharing and knowledge
3. 雑談・息抜き — casual chat
4. 匿名ならではの相談 — consultation and troubleshooting

When a post carries no category, the board infers one from the question text
by keyword matching, checked in the order above; text matching nothing is
filed under 雑談・息抜き.

## Rules

1. **A board session is required to write.** Posting, answering,
   bookmarking, and liking all act as the currently logged-in board user.
   Without a session these tools fail.
2. **Empty text does nothing.** An empty question or answer is silently
   dropped — no post, no error.
3. **Post ids are positions.** A post is addressed by its current position
   in the board. Deleting a post shifts every later id down by one, so
   re-list before acting on a stale id.
4. **Answers are append-only.** There is no edit and no delete for answers.
5. **Reactions are plain counters.** Bookmarks (per post) and likes (per
   answer) just increment; the same user may react repeatedly.
`
