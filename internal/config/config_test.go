package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("level = %v, want WARN", cfg.SlogLevel())
	}
}

func TestParseConfig_Full(t *testing.T) {
	yaml := `
color: never
context_span: 10
log_level: debug
builtins: false
prelude:
  - name: id
    expr: '\x. x'
  - name: Y
    file: lib/y.lam
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Config{
		Color:       ColorNever,
		ContextSpan: 10,
		LogLevel:    "debug",
		Builtins:    false,
		Prelude: []PreludeEntry{
			{Name: "id", Expr: `\x. x`},
			{Name: "Y", File: "lib/y.lam"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %v, want DEBUG", cfg.SlogLevel())
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"color", "color: purple", `color must be auto, always or never, got "purple"`},
		{"span", "context_span: -1", "context_span must not be negative"},
		{"level", "log_level: loud", `unknown log_level "loud"`},
		{"no_name", "prelude:\n  - expr: x", "prelude[0]: name is required"},
		{"bad_name", "prelude:\n  - name: 1x\n    expr: x", `prelude[0]: "1x" is not a valid name`},
		{"both", "prelude:\n  - name: a\n    expr: x\n    file: a.lam", "prelude[0] (a): exactly one of expr or file is required"},
		{"neither", "prelude:\n  - name: a", "prelude[0] (a): exactly one of expr or file is required"},
		{"duplicate", "prelude:\n  - name: a\n    expr: x\n  - name: a\n    expr: y", `prelude[1]: "a" is already defined by prelude[0]`},
		{"syntax", "color: [", "parsing test.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigSetsDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte("color: always\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("dir = %q, want %q", cfg.Dir, dir)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("color = %q, want always", cfg.Color)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigEnvVar, "")

	got, err := FindConfig("", dir)
	if err != nil || got != "" {
		t.Errorf("empty dir: got %q, %v", got, err)
	}

	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, _ := FindConfig("", dir); got != path {
		t.Errorf("got %q, want %q", got, path)
	}

	t.Setenv(ConfigEnvVar, "/from/env.yaml")
	if got, _ := FindConfig("", dir); got != "/from/env.yaml" {
		t.Errorf("env: got %q", got)
	}
	if got, _ := FindConfig("explicit.yaml", dir); got != "explicit.yaml" {
		t.Errorf("explicit: got %q", got)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := map[string]bool{
		"x": true, "f_1": true, "y'": true, "_": true, "Ünï": true,
		"": false, "1x": false, "λ": false, "a b": false, "'a": false, "a.b": false,
	}
	for in, want := range tests {
		if got := IsIdentifier(in); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSourceExt(t *testing.T) {
	if !HasSourceExt("a/b.lam") || !HasSourceExt("b.badlam") || HasSourceExt("b.txt") {
		t.Error("HasSourceExt misclassified a path")
	}
	if got := TrimSourceExt("dir/prog.badlam"); got != "dir/prog" {
		t.Errorf("TrimSourceExt = %q", got)
	}
}
