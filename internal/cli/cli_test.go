package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"defterm/internal/config"
	appver "defterm/internal/version"
)

const helloPost = `---
title: Hello GPU
description: Notes on my first CUDA kernel
date: 2024-05-01
tags: [cuda, gpu]
---
# Kernels

Some **bold** text.
`

const draftPost = `---
title: Unfinished
description: wip
date: 2024-07-01
draft: true
---
todo
`

// run executes the root command with args, always against an isolated
// config file since flag values persist across Execute calls.
func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func contentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{"hello-gpu.md": helloPost, "wip.md": draftPost} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "config.yaml"), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != appver.AppVersion {
		t.Fatalf("got %q", out)
	}

	out, err = run(t, filepath.Join(t.TempDir(), "config.yaml"), "version", "--long")
	if err != nil {
		t.Fatalf("version --long: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "defterm "+appver.AppVersion || !strings.HasPrefix(lines[1], "go") {
		t.Fatalf("got %q", out)
	}
	// flag values persist across Execute calls
	_, _ = run(t, filepath.Join(t.TempDir(), "config.yaml"), "version", "--long=false")
}

func TestPosts(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	dir := contentDir(t)

	out, err := run(t, cfg, "posts", "ls", "--content", dir, "--drafts=false")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, "2024-05-01  hello-gpu") || strings.Contains(out, "wip") {
		t.Fatalf("ls: %q", out)
	}

	out, err = run(t, cfg, "posts", "ls", "--content", dir, "--drafts")
	if err != nil || !strings.Contains(out, "(draft)") {
		t.Fatalf("ls --drafts: %v %q", err, out)
	}

	out, err = run(t, cfg, "posts", "search", "--content", dir, "cuda")
	if err != nil || !strings.Contains(out, "Hello GPU  [cuda, gpu]") {
		t.Fatalf("search: %v %q", err, out)
	}

	out, err = run(t, cfg, "posts", "show", "--content", dir, "--width", "60", "hello-gpu")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if plain := ansi.Strip(out); !strings.Contains(plain, "Hello GPU") || !strings.Contains(plain, "bold") {
		t.Fatalf("show: %q", plain)
	}

	if _, err := run(t, cfg, "posts", "show", "--content", dir, "missing"); err == nil {
		t.Fatalf("expected an error for a missing post")
	}
}

func TestPosts_SkipsInvalidFiles(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	dir := contentDir(t)
	broken := "---\ntitle: Only a title\n---\nbody\n"
	if err := os.WriteFile(filepath.Join(dir, "broken.md"), []byte(broken), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, cfg, "posts", "ls", "--content", dir, "--drafts=false")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, "hello-gpu") || strings.Contains(out, "broken") {
		t.Fatalf("ls: %q", out)
	}

	out, err = run(t, cfg, "posts", "show", "--content", dir, "--width", "60", "hello-gpu")
	if err != nil || !strings.Contains(ansi.Strip(out), "Hello GPU") {
		t.Fatalf("show: %v %q", err, out)
	}

	if _, err := run(t, cfg, "posts", "ls", "--content", filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected an error for an unreadable directory")
	}
}

func TestPosts_NoContentDir(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "config.yaml"), "posts", "ls", "--content", "")
	if !errors.Is(err, errNoContentDir) {
		t.Fatalf("want errNoContentDir, got %v", err)
	}
}

func TestPostsSchema(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "config.yaml"), "posts", "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if !strings.Contains(out, `"title"`) || !strings.Contains(out, `"required"`) {
		t.Fatalf("schema: %q", out)
	}
}

func TestConfig_CreatesThenNormalizes(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "sub", "config.yaml")

	out, err := run(t, cfg, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "created") || !config.FileExists(cfg) {
		t.Fatalf("expected config to be created: %q", out)
	}
	got, err := config.LoadFile(cfg)
	if err != nil || got.WebAddr != config.DefaultWebAddr {
		t.Fatalf("load: %v %+v", err, got)
	}

	out, err = run(t, cfg, "config")
	if err != nil || !strings.Contains(out, "normalized") {
		t.Fatalf("second run: %v %q", err, out)
	}
}
