package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/heartmarshall/wordlens/internal/domain"
	"github.com/heartmarshall/wordlens/internal/service/analysis"
)

// analysisService defines the minimal interface needed by the REPL.
type analysisService interface {
	Analyze(ctx context.Context, sess *analysis.Session, text string) (*analysis.Result, error)
	Click(ctx context.Context, sess *analysis.Session, offset int) (*analysis.Definition, error)
	Define(ctx context.Context, word string) (*analysis.Definition, error)
}

var commands = []prompt.Suggest{
	{Text: "analyze", Description: "Analyze a sentence"},
	{Text: "click", Description: "Define the marked word at an offset"},
	{Text: "define", Description: "Define any word"},
	{Text: "words", Description: "List the clickable words"},
	{Text: "help", Description: "Show help"},
	{Text: "quit", Description: "Exit"},
}

// REPL is the interactive terminal front end. It owns a single session.
type REPL struct {
	svc      analysisService
	sess     *analysis.Session
	renderer *Renderer
	out      io.Writer
	log      *slog.Logger
}

// NewREPL creates a REPL writing to out.
func NewREPL(svc analysisService, renderer *Renderer, out io.Writer, logger *slog.Logger) *REPL {
	return &REPL{
		svc:      svc,
		sess:     analysis.NewSession(),
		renderer: renderer,
		out:      out,
		log:      logger.With("handler", "repl"),
	}
}

// Run reads commands until quit, EOF or ctx is done.
func (r *REPL) Run(ctx context.Context, version string) {
	fmt.Fprintf(r.out, "wordlens %s\n", version)
	fmt.Fprintf(r.out, "Enter a sentence. Marked words: %s\n\n", r.renderer.Legend())
	r.printHelp()

	p := prompt.New(
		func(in string) { r.Execute(ctx, in) },
		r.complete,
		prompt.OptionPrefix("wordlens >> "),
		prompt.OptionTitle("wordlens"),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return ctx.Err() != nil || (breakline && isQuit(in))
		}),
	)
	p.Run()
}

func (r *REPL) complete(d prompt.Document) []prompt.Suggest {
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return nil
	}
	return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
}

// Execute runs one input line. A line that does not start with a command
// is analyzed as a sentence.
func (r *REPL) Execute(ctx context.Context, in string) {
	line := strings.TrimSpace(in)
	if line == "" {
		return
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "analyze":
		if rest == "" {
			fmt.Fprintln(r.out, "Usage: analyze <sentence>")
			return
		}
		r.cmdAnalyze(ctx, rest)
	case "click":
		r.cmdClick(ctx, rest)
	case "define":
		r.cmdDefine(ctx, rest)
	case "words":
		r.cmdWords()
	case "help":
		r.printHelp()
	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
	default:
		r.cmdAnalyze(ctx, line)
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  <sentence>          - Analyze a sentence")
	fmt.Fprintln(r.out, "  analyze <sentence>  - Analyze a sentence that starts with a command word")
	fmt.Fprintln(r.out, "  click <offset>      - Define the marked word at a character offset")
	fmt.Fprintln(r.out, "  define <word>       - Define any word")
	fmt.Fprintln(r.out, "  words               - List marked words with their offsets")
	fmt.Fprintln(r.out, "  help                - Show this help")
	fmt.Fprintln(r.out, "  quit                - Exit")
}

func (r *REPL) cmdAnalyze(ctx context.Context, text string) {
	result, err := r.svc.Analyze(ctx, r.sess, text)
	if err != nil {
		r.printError(ctx, err)
		return
	}
	fmt.Fprintln(r.out, r.renderer.Render(result.Tokens))
}

func (r *REPL) cmdClick(ctx context.Context, arg string) {
	offset, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(r.out, "Usage: click <offset>")
		return
	}

	def, err := r.svc.Click(ctx, r.sess, offset)
	if err != nil {
		r.printError(ctx, err)
		return
	}
	r.printDefinition(def)
}

func (r *REPL) cmdDefine(ctx context.Context, word string) {
	if word == "" {
		fmt.Fprintln(r.out, "Usage: define <word>")
		return
	}

	def, err := r.svc.Define(ctx, word)
	if err != nil {
		r.printError(ctx, err)
		return
	}
	r.printDefinition(def)
}

func (r *REPL) cmdWords() {
	entries := r.sess.Index().Entries()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No marked words.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(r.out, "  %4d-%-4d %s\n", e.Start, e.End(), e.Key)
	}
}

func (r *REPL) printDefinition(def *analysis.Definition) {
	fmt.Fprintf(r.out, "%s: %s\n", def.Word, def.Text)
}

func (r *REPL) printError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrNoWordAtOffset):
		fmt.Fprintln(r.out, "No marked word at that offset.")
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(r.out, "Error: %v\n", err)
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(r.out, "Cancelled.")
	default:
		r.log.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func isQuit(in string) bool {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "quit", "exit":
		return true
	}
	return false
}
