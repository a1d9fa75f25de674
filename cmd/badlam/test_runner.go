package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/funvibe/badlam/internal/config"
	"github.com/funvibe/badlam/internal/utils"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

// testResult is the outcome of one program run by `badlam test`.
type testResult struct {
	path   string
	passed bool
	detail string
}

// runTests runs each program on its own evaluator, in parallel, and reports
// results in argument order. Directories contribute their source files.
func runTests(args []string, cfg *config.Config, logger *slog.Logger, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "Usage: %s test <file> [file2...]\n", config.ProgName)
		return 2
	}
	files, err := collectTestFiles(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Fprintln(stdout, "No test files found")
		return 0
	}

	results := make([]testResult, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			results[i] = runTestFile(path, cfg, logger)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.passed {
			fmt.Fprintf(stdout, "ok   %s\n", r.path)
			continue
		}
		failed++
		fmt.Fprintf(stdout, "FAIL %s\n", r.path)
		if r.detail != "" {
			fmt.Fprintln(stdout, indent(r.detail))
		}
	}
	fmt.Fprintf(stdout, "%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func collectTestFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory: %w", err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && config.HasSourceExt(entry.Name()) {
				files = append(files, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return files, nil
}

// runTestFile compares what `badlam FILE` would print with FILE's .want file.
func runTestFile(path string, cfg *config.Config, logger *slog.Logger) testResult {
	res := testResult{path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.detail = err.Error()
		return res
	}
	want, err := os.ReadFile(utils.WantPath(path))
	if err != nil {
		res.detail = fmt.Sprintf("missing expected output: %s", err)
		return res
	}

	var out bytes.Buffer
	sess, err := newSession(cfg, logger.With("program", utils.ExtractProgramName(path)), &out, false)
	if err != nil {
		res.detail = err.Error()
		return res
	}
	sess.runSource(string(src), path)

	if diff := cmp.Diff(lines(string(want)), lines(out.String())); diff != "" {
		res.detail = "output mismatch (-want +got):\n" + diff
		return res
	}
	res.passed = true
	return res
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func indent(s string) string {
	parts := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, p := range parts {
		parts[i] = "    " + p
	}
	return strings.Join(parts, "\n")
}
