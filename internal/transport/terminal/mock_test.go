package terminal

import (
	"context"
	"io"
	"log/slog"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/heartmarshall/wordlens/internal/service/analysis"
)

type analysisServiceMock struct {
	AnalyzeFunc func(ctx context.Context, sess *analysis.Session, text string) (*analysis.Result, error)
	ClickFunc   func(ctx context.Context, sess *analysis.Session, offset int) (*analysis.Definition, error)
	DefineFunc  func(ctx context.Context, word string) (*analysis.Definition, error)
}

func (m *analysisServiceMock) Analyze(ctx context.Context, sess *analysis.Session, text string) (*analysis.Result, error) {
	return m.AnalyzeFunc(ctx, sess, text)
}

func (m *analysisServiceMock) Click(ctx context.Context, sess *analysis.Session, offset int) (*analysis.Definition, error) {
	return m.ClickFunc(ctx, sess, offset)
}

func (m *analysisServiceMock) Define(ctx context.Context, word string) (*analysis.Definition, error) {
	return m.DefineFunc(ctx, word)
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

// colorRenderer returns a renderer that always emits ANSI colors.
func colorRenderer() *Renderer {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.ANSI256)
	return NewRenderer(NewTheme(lr))
}

func plainRenderer() *Renderer {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.Ascii)
	return NewRenderer(NewTheme(lr))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
