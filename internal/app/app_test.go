package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reader/internal/action"
	"reader/internal/model"
	"reader/internal/prompt"
	"reader/internal/search"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "guide.md"), []byte("intro\nsetup steps\nusage\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0644))
	return root
}

func TestRun_NavigateAndRead(t *testing.T) {
	root := setupTree(t)
	p := prompt.NewScripted(filepath.Join(root, "docs"), filepath.Join(root, "docs", "guide.md"), action.Read)
	var out bytes.Buffer

	cfg := Config{WorkDir: root, Theme: model.PlainTheme()}
	require.NoError(t, Run(cfg, p, &out))

	assert.Equal(t, "intro\nsetup steps\nusage\n", out.String())
}

func TestRun_NavigateAndFind(t *testing.T) {
	root := setupTree(t)
	p := prompt.NewScripted(filepath.Join(root, "docs"), filepath.Join(root, "docs", "guide.md"), action.Find, "s")
	var out bytes.Buffer

	cfg := Config{WorkDir: root, Theme: model.PlainTheme()}
	require.NoError(t, Run(cfg, p, &out))

	assert.Equal(t, "Line-(2)\tsetup steps\nLine-(3)\tusage\n", out.String())
}

func TestRun_DefaultPathMatchesExplicitPath(t *testing.T) {
	root := setupTree(t)
	answers := []string{filepath.Join(root, "main.go"), action.Read}

	var implicit, explicit bytes.Buffer
	pi := prompt.NewScripted(answers...)
	pe := prompt.NewScripted(answers...)

	require.NoError(t, Run(Config{WorkDir: root, Theme: model.PlainTheme()}, pi, &implicit))
	require.NoError(t, Run(Config{Path: root, WorkDir: "/elsewhere", Theme: model.PlainTheme()}, pe, &explicit))

	assert.Equal(t, implicit.String(), explicit.String())
	assert.Equal(t, pi.Calls, pe.Calls)
}

func TestRun_RelativePath(t *testing.T) {
	root := setupTree(t)
	p := prompt.NewScripted(action.Find, "package")
	var out bytes.Buffer

	cfg := Config{Path: "main.go", WorkDir: root, Mode: search.Literal, Theme: model.PlainTheme()}
	require.NoError(t, Run(cfg, p, &out))

	assert.Equal(t, "Line-(1)\tpackage main\n", out.String())
}

func TestRun_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	err := Run(Config{WorkDir: root, Theme: model.PlainTheme()}, prompt.NewScripted(), &out)
	assert.True(t, errors.Is(err, model.ErrEmptyDirectory))
	assert.Empty(t, out.String())
}

func TestRun_InvalidPattern(t *testing.T) {
	root := setupTree(t)
	p := prompt.NewScripted(action.Find, "[")
	var out bytes.Buffer

	cfg := Config{Path: filepath.Join(root, "main.go"), Mode: search.Pattern, Theme: model.PlainTheme()}
	err := Run(cfg, p, &out)
	assert.True(t, errors.Is(err, search.ErrInvalidPattern))
}
