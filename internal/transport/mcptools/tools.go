// Package mcptools exposes word analysis to MCP clients over stdio.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/service/analysis"
)

// analysisService defines the minimal interface needed by the tools.
type analysisService interface {
	Analyze(ctx context.Context, sess *analysis.Session, text string) (*analysis.Result, error)
	Define(ctx context.Context, word string) (*analysis.Definition, error)
}

// Tools implements the MCP tool handlers.
type Tools struct {
	svc analysisService
	log *slog.Logger
}

// New creates the tool handlers.
func New(svc analysisService, logger *slog.Logger) *Tools {
	return &Tools{svc: svc, log: logger.With("handler", "mcp")}
}

// NewServer creates an MCP server with every tool registered.
func NewServer(t *Tools, version string) *server.MCPServer {
	srv := server.NewMCPServer("wordlens", version, server.WithToolCapabilities(false))
	t.Register(srv)
	return srv
}

// Register adds analyze_sentence and define_word to srv.
func (t *Tools) Register(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool("analyze_sentence",
		mcp.WithDescription("Classify every word of an English sentence as EASY, MEDIUM or HARD by how common it is. Medium and hard words are returned with their offsets."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The sentence to analyze")),
	), t.AnalyzeSentence)

	srv.AddTool(mcp.NewTool("define_word",
		mcp.WithDescription("Return the first dictionary definition of an English word."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to define")),
	), t.DefineWord)
}

type tokenResult struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Tier   string `json:"tier"`
}

type markedWord struct {
	Word  string `json:"word"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tier  string `json:"tier"`
}

type analyzeResult struct {
	Rendered string        `json:"rendered"`
	Tokens   []tokenResult `json:"tokens"`
	Marked   []markedWord  `json:"marked"`
}

type defineResult struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Found      bool   `json:"found"`
}

// AnalyzeSentence handles the analyze_sentence tool. Each call analyzes in
// a fresh session.
func (t *Tools) AnalyzeSentence(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, _ := req.GetArguments()["text"].(string)
	if text == "" {
		return mcp.NewToolResultError("invalid arguments: text is required"), nil
	}

	sess := analysis.NewSession()
	result, err := t.svc.Analyze(ctx, sess, text)
	if err != nil {
		t.log.WarnContext(ctx, "analyze_sentence failed", slog.String("error", err.Error()))
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := analyzeResult{
		Rendered: result.Rendered,
		Tokens:   make([]tokenResult, 0, len(result.Tokens)),
		Marked:   []markedWord{},
	}
	for _, tok := range result.Tokens {
		out.Tokens = append(out.Tokens, tokenResult{Text: tok.Raw, Offset: tok.Offset, Tier: tok.Tier.String()})
		if tok.Tier.Marked() {
			out.Marked = append(out.Marked, markedWord{
				Word:  tok.Key,
				Start: tok.Offset,
				End:   analysis.Entry{Start: tok.Offset, Key: tok.Key}.End(),
				Tier:  tok.Tier.String(),
			})
		}
	}
	return jsonResult(out)
}

// DefineWord handles the define_word tool. A missing definition is a
// normal result carrying "Definition not found.".
func (t *Tools) DefineWord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, _ := req.GetArguments()["word"].(string)

	def, err := t.svc.Define(ctx, word)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(defineResult{Word: def.Word, Definition: def.Text, Found: def.Found})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
