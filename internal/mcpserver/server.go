// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes LoungeUp board tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shiian109/loungeup/internal/board"
)

// Server wraps the MCP server with board tools.
type Server struct {
	mcp *server.MCPServer
	svc *board.Service
}

// New creates a new MCP server with all board tools registered.
func New(svc *board.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"LoungeUp",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List board posts, optionally filtered by category and search text. "+
			"Sort is \"latest\" (default) or \"bookmarks\"."),
		mcp.WithString("category", mcp.Description("Category filter (\"All\" or empty for everything)")),
		mcp.WithString("query", mcp.Description("Case-insensitive substring to search question text for")),
		mcp.WithString("sort", mcp.Description("Sort mode: latest or bookmarks")),
	), s.listPosts)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read one post with its answers and reaction counts."),
		mcp.WithNumber("post_id", mcp.Required(), mcp.Description("Current position of the post in the board")),
	), s.readPost)

	s.mcp.AddTool(mcp.NewTool("create_post",
		mcp.WithDescription("Post a question as the currently logged-in board user. "+
			"Category is optional; an empty one is inferred from the question text. "+
			"Read the posting guide first via the get_posting_guide tool or the "+
			"loungeup://posting-guide resource."),
		mcp.WithString("question", mcp.Required(), mcp.Description("Question text")),
		mcp.WithString("category", mcp.Description("One of the four fixed categories, or empty to infer")),
	), s.createPost)

	s.mcp.AddTool(mcp.NewTool("add_answer",
		mcp.WithDescription("Answer a post as the currently logged-in board user."),
		mcp.WithNumber("post_id", mcp.Required(), mcp.Description("Current position of the post")),
		mcp.WithString("answer", mcp.Required(), mcp.Description("Answer text")),
	), s.addAnswer)

	s.mcp.AddTool(mcp.NewTool("user_stats",
		mcp.WithDescription("Posts, answers, and received reactions of one user."),
		mcp.WithString("username", mcp.Required(), mcp.Description("Username to report on")),
	), s.userStats)

	s.mcp.AddTool(mcp.NewTool("community_stats",
		mcp.WithDescription("Board-wide totals and the most popular category."),
	), s.communityStats)

	s.mcp.AddTool(mcp.NewTool("get_posting_guide",
		mcp.WithDescription("Returns the board's posting guide: the fixed categories and how "+
			"classification, sessions, and reactions behave."),
	), s.getPostingGuide)

	// Resource: posting guide.
	s.mcp.AddResource(
		mcp.NewResource("loungeup://posting-guide", "Posting Guide",
			mcp.WithResourceDescription("How posts, categories, and reactions work on this board."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readPostingGuideResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, query, sort := "", "", ""
	if v, err := req.RequireString("category"); err == nil {
		category = v
	}
	if v, err := req.RequireString("query"); err == nil {
		query = v
	}
	if v, err := req.RequireString("sort"); err == nil {
		sort = v
	}
	views, total := s.svc.ListPosts(category, query, sort, 0)
	out, _ := json.MarshalIndent(map[string]any{"posts": views, "total": total}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("post_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	view, err := s.svc.GetPost(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("post not found: %d", id)), nil
	}
	out, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := req.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category := ""
	if v, catErr := req.RequireString("category"); catErr == nil {
		category = v
	}
	post, err := s.svc.CreatePost(question, category)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if post == nil {
		return mcp.NewToolResultText("nothing posted: question was empty"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("posted #%d in %s", post.PostID, post.Category)), nil
}

func (s *Server) addAnswer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("post_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	answer, err := req.RequireString("answer")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ans, err := s.svc.AddAnswer(id, answer)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ans == nil {
		return mcp.NewToolResultText("nothing added: answer was empty"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("answered post #%d as %s", id, ans.User)), nil
}

func (s *Server) userStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(s.svc.UserStats(username), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) communityStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.CommunityStats(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getPostingGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(PostingGuide), nil
}

func (s *Server) readPostingGuideResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "loungeup://posting-guide",
			MIMEType: "text/markdown",
			Text:     PostingGuide,
		},
	}, nil
}
