// Package mcpserver exposes the portfolio content to LLM clients over the
// Model Context Protocol (stdio transport).
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/folio/internal/apperr"
	"github.com/starford/folio/internal/blog"
	"github.com/starford/folio/internal/content"
	"github.com/starford/folio/internal/nav"
)

// ProfileURI is the resource holding the profile and about text.
const ProfileURI = "folio://profile"

// Server wraps the MCP server with portfolio tools.
type Server struct {
	mcp  *server.MCPServer
	blog *blog.Service
}

// New creates an MCP server with all tools registered.
func New(posts *blog.Service, version string) *Server {
	s := &Server{blog: posts}

	s.mcp = server.NewMCPServer(
		"Folio",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_sections",
		mcp.WithDescription("List the navigable sections of the portfolio in sidebar order."),
	), s.listSections)

	s.mcp.AddTool(mcp.NewTool("list_certificates",
		mcp.WithDescription("List certificates. By default only pinned certificates are returned."),
		mcp.WithBoolean("show_all", mcp.Description("Include certificates that are not pinned")),
	), s.listCertificates)

	s.mcp.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List portfolio projects with links and image counts."),
	), s.listProjects)

	s.mcp.AddTool(mcp.NewTool("search_posts",
		mcp.WithDescription("Search blog posts by title substring and exact category. Empty filters match all."),
		mcp.WithString("query", mcp.Description("Case-insensitive title substring")),
		mcp.WithString("category", mcp.Description("Category name, compared case-insensitively")),
	), s.searchPosts)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read a blog post with its rendered HTML body and like count."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post id, e.g. 2025-02-03")),
	), s.readPost)

	s.mcp.AddTool(mcp.NewTool("like_post",
		mcp.WithDescription("Add one like to a blog post and return the new count."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post id")),
	), s.likePost)

	s.mcp.AddResource(
		mcp.NewResource(ProfileURI, "Profile",
			mcp.WithResourceDescription("Name, headline, contact details and about text."),
			mcp.WithMIMEType("application/json"),
		),
		s.readProfile,
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

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listSections(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type section struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
	var out []section
	for _, sec := range nav.Sections() {
		out = append(out, section{Key: sec.Key, Label: sec.Label})
	}
	return jsonResult(out)
}

func (s *Server) listCertificates(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	showAll := req.GetBool("show_all", false)
	return jsonResult(content.Displayed(content.Certificates, showAll))
}

func (s *Server) listProjects(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type project struct {
		Slug        string   `json:"slug"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		URL         string   `json:"url"`
		GitHub      string   `json:"github"`
		Skills      []string `json:"skills"`
		Images      int      `json:"images"`
	}
	var out []project
	for _, p := range content.Projects {
		out = append(out, project{
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.ShortDescription,
			URL:         p.ProjectURL,
			GitHub:      p.GitHubURL,
			Skills:      p.Skills,
			Images:      len(p.Images),
		})
	}
	return jsonResult(out)
}

func (s *Server) searchPosts(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	category := req.GetString("category", "")
	return jsonResult(s.blog.List(query, category))
}

func (s *Server) readPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	a, err := s.blog.Open(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	return jsonResult(struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Date     string `json:"date"`
		Likes    int    `json:"likes"`
		HTML     string `json:"html"`
	}{a.ID, a.Title, a.Category, a.Date, a.Likes, string(a.Body)})
}

func (s *Server) likePost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := s.blog.Like(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %d", id, n)), nil
}

func (s *Server) readProfile(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	out, err := json.Marshal(struct {
		Profile any      `json:"profile"`
		About   []string `json:"about"`
	}{content.Profile, content.About})
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ProfileURI,
			MIMEType: "application/json",
			Text:     string(out),
		},
	}, nil
}
