package prettyprinter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/funvibe/badlam/internal/diagnostics"
	"github.com/funvibe/badlam/internal/evaluator"
	"github.com/funvibe/badlam/internal/token"
)

const tabWidth = 8

// SourceContext returns the source line around pos, cut to span characters
// on each side, followed by a line with a caret under pos. Both lines end in
// a newline.
func SourceContext(src string, pos token.Position, span int) string {
	offset := pos.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	for offset > 0 && offset < len(src) && !utf8.RuneStart(src[offset]) {
		offset--
	}

	start := offset
	for n := 0; n < span && start > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(src[:start])
		start -= size
	}
	end := offset
	for n := 0; n < span && end < len(src); n++ {
		_, size := utf8.DecodeRuneInString(src[end:])
		end += size
	}

	before := src[start:offset]
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	after := src[offset:end]
	if i := strings.IndexByte(after, '\n'); i >= 0 {
		after = after[:i]
	}
	return before + after + "\n" + strings.Repeat(" ", displayWidth(before)) + "^\n"
}

// displayWidth counts runes with tabs expanded to tabWidth columns.
func displayWidth(s string) int {
	col := 0
	for _, r := range s {
		if r == '\t' {
			col += tabWidth - col%tabWidth
			continue
		}
		col++
	}
	return col
}

// Traceback renders top-level failures against the program source.
type Traceback struct {
	Source string
	Span   int
	Color  bool
}

func NewTraceback(src string, span int, color bool) *Traceback {
	return &Traceback{Source: src, Span: span, Color: color}
}

// RuntimeError renders err, then one entry per call frame with a known
// position, outermost first.
func (t *Traceback) RuntimeError(e *evaluator.Evaluator, err *evaluator.Error, calls []evaluator.CallFrame) string {
	p := painter(t.Color)
	var out strings.Builder

	if err.Pos.IsValid() {
		fmt.Fprintf(&out, "%s\n", p.red(fmt.Sprintf("Runtime error at line %d, column %d:", err.Pos.Line, err.Pos.Column)))
		out.WriteString(describe(e, err) + "\n\n")
		out.WriteString(t.context(p, err.Pos) + "\n")
	} else {
		out.WriteString(p.red("Error:") + "\n")
		out.WriteString(describe(e, err) + "\n")
	}

	out.WriteString(p.bold("Traceback:") + "\n")
	for _, frame := range calls {
		if !frame.Pos.IsValid() {
			continue
		}
		fmt.Fprintf(&out, "At line %d, column %d:\n", frame.Pos.Line, frame.Pos.Column)
		out.WriteString(t.context(p, frame.Pos) + "\n")
	}
	return out.String()
}

// SyntaxError renders a lexer or parser diagnostic.
func (t *Traceback) SyntaxError(d *diagnostics.DiagnosticError) string {
	p := painter(t.Color)
	var out strings.Builder
	out.WriteString(p.red("Syntax error:") + "\n\n")
	if d.Token.Line > 0 {
		out.WriteString(t.context(p, d.Token.Pos()) + "\n")
	}
	out.WriteString(d.Error() + "\n")
	return out.String()
}

func (t *Traceback) context(p painter, pos token.Position) string {
	ctx := SourceContext(t.Source, pos, t.Span)
	if !p {
		return ctx
	}
	// Colour the caret only.
	i := strings.LastIndexByte(ctx, '^')
	return ctx[:i] + p.red("^") + ctx[i+1:]
}

// describe returns the dump of the exception instance and its message.
// An instance whose own dump fails is shown by class name.
func describe(e *evaluator.Evaluator, err *evaluator.Error) string {
	var name string
	if err.Instance != nil {
		if s, derr := evaluator.DumpString(e, err.Instance, err.Pos); derr == nil {
			name = s
		}
	}
	if name == "" {
		if c := err.Class(); c != nil {
			name = c.Name
		}
	}
	if msg, ok := err.Message(); ok && msg != "" {
		return name + ": " + msg
	}
	return name
}
