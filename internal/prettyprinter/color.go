package prettyprinter

import (
	"os"

	"github.com/funvibe/badlam/internal/config"
	"github.com/mattn/go-isatty"
)

// ColorEnabled decides whether output written to f gets ANSI colour.
// mode is one of config.ColorAuto, config.ColorAlways, config.ColorNever.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	ansiBold  = "\033[1m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

type painter bool

func (p painter) wrap(code, s string) string {
	if !p {
		return s
	}
	return code + s + ansiReset
}

func (p painter) red(s string) string  { return p.wrap(ansiRed, s) }
func (p painter) bold(s string) string { return p.wrap(ansiBold, s) }
