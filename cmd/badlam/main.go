package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/funvibe/badlam/internal/config"
	"github.com/mattn/go-isatty"
)

const usage = `Usage:
  %[1]s [flags] FILE          run a program and print the dump of its result
  %[1]s [flags] -e EXPR       evaluate an expression
  %[1]s [flags]               read a program from stdin, or start the REPL on a terminal
  %[1]s [flags] test FILE...  compare each FILE's output with its .want file

Flags:
  -ast           print the syntax tree instead of evaluating
  -config PATH   configuration file (default $%[2]s or ./%[3]s)
  -debug         enable debug logging
  -version       print the version and exit
  -help          print this help and exit
`

// options are the parsed command line.
type options struct {
	expr       string
	hasExpr    bool
	showAST    bool
	configPath string
	debug      bool
	version    bool
	help       bool
	args       []string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(opts.args) > 0 || !strings.HasPrefix(arg, "-") || arg == "-" {
			opts.args = append(opts.args, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag %s needs an argument", arg)
			}
			i++
			return args[i], nil
		}
		var err error
		switch name {
		case "e", "eval":
			opts.expr, err = value()
			opts.hasExpr = true
		case "ast":
			opts.showAST = true
		case "config":
			opts.configPath, err = value()
		case "debug":
			opts.debug = true
		case "v", "version":
			opts.version = true
		case "h", "help":
			opts.help = true
		default:
			return nil, fmt.Errorf("unknown flag %s", arg)
		}
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		fmt.Fprintf(stderr, usage, config.ProgName, config.ConfigEnvVar, config.DefaultConfigFile)
		return 2
	}
	if opts.help {
		fmt.Fprintf(stdout, usage, config.ProgName, config.ConfigEnvVar, config.DefaultConfigFile)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", config.ProgName, config.Version)
		return 0
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	level := cfg.SlogLevel()
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	color := colorFor(cfg, stdout)

	if len(opts.args) > 0 && opts.args[0] == "test" {
		return runTests(opts.args[1:], cfg, logger, stdout, stderr)
	}

	sess, err := newSession(cfg, logger, stdout, color)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	var src, path string
	switch {
	case opts.hasExpr:
		src = opts.expr
	case len(opts.args) > 0:
		path = opts.args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading input: %s\n", err)
			return 1
		}
		src = string(data)
	case isTerminal(stdin) && !opts.showAST:
		return repl(sess, stdin, stdout)
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading input: %s\n", err)
			return 1
		}
		src = string(data)
	}

	if opts.showAST {
		return sess.printAST(src, path)
	}
	return sess.runSource(src, path)
}

// loadConfig resolves and reads the configuration, or returns defaults.
func loadConfig(explicit string) (*config.Config, error) {
	path, err := config.FindConfig(explicit, ".")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
