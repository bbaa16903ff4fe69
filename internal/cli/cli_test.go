package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sciencestack-ai/sciencestack-tokens/internal/config"
)

func TestSetVersion(t *testing.T) {
	oldVersion := version
	defer func() { version = oldVersion }()

	SetVersion("1.2.3")
	if version != "1.2.3" {
		t.Errorf("expected version '1.2.3', got '%s'", version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "scitokens" {
		t.Errorf("expected Use 'scitokens', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestVersionCommand(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("expected Use 'version', got '%s'", versionCmd.Use)
	}

	if versionCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestRenderCommandFlags(t *testing.T) {
	if renderCmd.Use != "render <doc.json>" {
		t.Errorf("expected Use 'render <doc.json>', got '%s'", renderCmd.Use)
	}

	flags := []string{"output", "format", "spans", "profile", "asset-base", "skip-styles", "math"}
	for _, flag := range flags {
		if renderCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag '%s' to exist", flag)
		}
	}
}

func TestLocateCommandFlags(t *testing.T) {
	if locateCmd.Use != "locate <doc.json>" {
		t.Errorf("expected Use 'locate <doc.json>', got '%s'", locateCmd.Use)
	}

	flags := []string{"excerpt", "format", "threshold", "context"}
	for _, flag := range flags {
		if locateCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag '%s' to exist", flag)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	if configCmd.Use != "config" {
		t.Errorf("expected Use 'config', got '%s'", configCmd.Use)
	}

	subcommands := []string{"show", "init", "set", "path"}
	for _, name := range subcommands {
		found := false
		for _, cmd := range configCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand '%s' to exist", name)
		}
	}
}

func TestRenderOptions(t *testing.T) {
	profile := &config.Profile{SkipStyles: true, AssetBase: "/assets"}
	opts := renderOptions(profile)

	if !opts.SkipStyles {
		t.Error("expected SkipStyles from profile")
	}
	if opts.AssetPath == nil {
		t.Fatal("expected asset path rewriter")
	}
	if got := opts.AssetPath("fig1.png"); got != "/assets/fig1.png" {
		t.Errorf("expected '/assets/fig1.png', got %s", got)
	}
}

func TestLoadDocument(t *testing.T) {
	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "doc.json")

	doc := `[{"id": "t1", "kind": "text", "text": "hello"}]`
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}

	nodes, err := loadDocument(docPath)
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if nodes[0].ID() != "t1" {
		t.Errorf("expected node id 't1', got %s", nodes[0].ID())
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := loadDocument(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected error for missing document")
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables are package-level and survive across executions.
	renderOutput = ""
	renderFormat = ""
	renderSpansPath = ""
	renderProfile = ""
	renderAssetBase = ""
	renderSkipStyles = false
	renderMathMode = false
	locateExcerpt = ""
	locateThreshold = 0
	locateContext = 40
	locateFormat = "latex"
	rootConfigPath = ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRenderEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "doc.json")
	outPath := filepath.Join(tmpDir, "out.md")
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	doc := `[{
		"id": "s1", "kind": "section", "level": 1,
		"children": [
			{"id": "tt", "kind": "text", "role": "title", "text": "Intro"},
			{"id": "t1", "kind": "text", "text": "body"}
		]
	}]`
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}

	_, err := runCommand(t, "render", docPath, "-f", "latex", "-o", outPath, "--config", cfgPath)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(out) != "\\section{Intro}\nbody" {
		t.Errorf("unexpected render output: %q", string(out))
	}
}

func TestRenderEndToEndSpans(t *testing.T) {
	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "doc.json")
	spansPath := filepath.Join(tmpDir, "spans.json")
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	doc := `[{"id": "t1", "kind": "text", "text": "hello"}]`
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}

	out, err := runCommand(t, "render", docPath, "-f", "latex", "--spans", spansPath, "--config", cfgPath)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected rendered content on stdout, got %q", out)
	}

	spans, err := os.ReadFile(spansPath)
	if err != nil {
		t.Fatalf("failed to read span map: %v", err)
	}
	if !strings.Contains(string(spans), `"t1"`) {
		t.Errorf("expected span entry for 't1', got %s", string(spans))
	}
}

func TestLocateEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "doc.json")
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	doc := `[{
		"id": "p1", "kind": "paragraph",
		"children": [{"id": "t1", "kind": "text", "text": "the quick brown fox jumps over the lazy dog"}]
	}]`
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}

	out, err := runCommand(t, "locate", docPath, "-e", "quick brown fox", "--config", cfgPath)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if !strings.Contains(out, "t1") {
		t.Errorf("expected match on node 't1', got %q", out)
	}
	if !strings.Contains(out, "single") {
		t.Errorf("expected single match type, got %q", out)
	}
}

func TestLocateEndToEndMiss(t *testing.T) {
	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "doc.json")
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	doc := `[{"id": "t1", "kind": "text", "text": "the quick brown fox"}]`
	if err := os.WriteFile(docPath, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}

	_, err := runCommand(t, "locate", docPath, "-e", "zzz qqq 90210 xvxvxv 777", "--config", cfgPath)
	if err == nil {
		t.Error("expected error for unmatched excerpt")
	}
}

func TestKindsCommand(t *testing.T) {
	out, err := runCommand(t, "kinds")
	if err != nil {
		t.Fatalf("kinds failed: %v", err)
	}

	for _, want := range []string{"document", "equation", "citation"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected kind '%s' in listing, got %q", want, out)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	out, err := runCommand(t, "config", "init", "--config", cfgPath)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, cfgPath) {
		t.Errorf("expected created path in output, got %q", out)
	}

	out, err = runCommand(t, "config", "show", "--config", cfgPath)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "default_profile: latex") {
		t.Errorf("expected default profile in output, got %q", out)
	}
}

func TestConfigSet(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	if _, err := runCommand(t, "config", "init", "--config", cfgPath); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	if _, err := runCommand(t, "config", "set", "default_profile", "markdown", "--config", cfgPath); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	cfg, err := config.NewLoaderWithPath(cfgPath).Load()
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if cfg.DefaultProfile != "markdown" {
		t.Errorf("expected default profile 'markdown', got %s", cfg.DefaultProfile)
	}

	if _, err := runCommand(t, "config", "set", "default_profile", "nope", "--config", cfgPath); err == nil {
		t.Error("expected error for unknown profile")
	}

	if _, err := runCommand(t, "config", "set", "match.fuzzy_threshold", "1.5", "--config", cfgPath); err == nil {
		t.Error("expected error for out-of-range threshold")
	}
}
