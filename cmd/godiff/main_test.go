package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linediff/godiff/modules/cliconfig"
	"github.com/linediff/godiff/modules/diferenco"
)

// chdir switches the working directory for the duration of the test,
// restoring it on cleanup; buildConfig reads .godiffrc.toml from ".".
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { assert.NoError(t, os.Chdir(wd)) })
}

func TestResolveWhiteSpacePrecedence(t *testing.T) {
	assert.Equal(t, diferenco.IgnoreAllSpace, resolveWhiteSpace(&flags{ignoreAllSpace: true, ignoreSpaceChange: true}))
	assert.Equal(t, diferenco.IgnoreSpaceChange, resolveWhiteSpace(&flags{ignoreSpaceChange: true}))
	assert.Equal(t, diferenco.IgnoreTabExpansionAndTrailingSpace, resolveWhiteSpace(&flags{ignoreTabExpansion: true, ignoreTrailingSpace: true}))
	assert.Equal(t, diferenco.IgnoreTrailingSpace, resolveWhiteSpace(&flags{ignoreTrailingSpace: true}))
	assert.Equal(t, diferenco.IgnoreTabExpansion, resolveWhiteSpace(&flags{ignoreTabExpansion: true}))
	assert.Equal(t, diferenco.IgnoreNoWhiteSpace, resolveWhiteSpace(&flags{}))
}

func TestExitCodeIdenticalReturnsNil(t *testing.T) {
	assert.NoError(t, exitCode(diferenco.ExitIdentical))
}

func TestExitCodeDifferentReturnsStatusError(t *testing.T) {
	err := exitCode(diferenco.ExitDifferent)
	coder, ok := err.(diferenco.ExitCoder)
	assert.True(t, ok)
	assert.Equal(t, diferenco.ExitDifferent, coder.ExitCode())
}

func TestRenderDispatchesOnFormatFlags(t *testing.T) {
	r, err := diferenco.Diff(context.Background(), "a", []byte("one\ntwo\n"), "b", []byte("one\nTWO\n"), &diferenco.Config{})
	assert.NoError(t, err)

	out, err := render(r, &flags{})
	assert.NoError(t, err)
	assert.Contains(t, out, "2c2")

	out, err = render(r, &flags{unifiedFlag: true})
	assert.NoError(t, err)
	assert.Contains(t, out, "@@")

	out, err = render(r, &flags{edFlag: true})
	assert.NoError(t, err)
	assert.Contains(t, out, "c\n")

	out, err = render(r, &flags{rcsFlag: true})
	assert.NoError(t, err)
	assert.Contains(t, out, "d2 1")

	out, err = render(r, &flags{sdiffFlag: true})
	assert.NoError(t, err)
	assert.Contains(t, out, "c 2 2")
}

func TestBuildConfigKeepsRCFileContextWhenNoFlagGiven(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".godiffrc.toml"), []byte("context = 5\n"), 0o644))
	chdir(t, dir)

	cfg, err := buildConfig(&flags{lines: -1}, "a")
	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.Context)
}

func TestBuildConfigFallsBackToDefaultContextWhenUnset(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := buildConfig(&flags{lines: -1}, "a")
	assert.NoError(t, err)
	assert.Equal(t, diferenco.DefaultContextLines, cfg.Context)
}

func TestBuildConfigFlagOverridesRCFileContext(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".godiffrc.toml"), []byte("context = 5\n"), 0o644))
	chdir(t, dir)

	cfg, err := buildConfig(&flags{lines: 2}, "a")
	assert.NoError(t, err)
	assert.Equal(t, 2, cfg.Context)
}

func TestApplyRCFileCopiesFields(t *testing.T) {
	rc := &cliconfig.File{IgnoreCase: true, TabSize: 4, Context: 3, HorizonLines: 2, Palette: "old=red"}
	cfg := &diferenco.Config{}
	applyRCFile(cfg, rc)
	assert.True(t, cfg.IgnoreCase)
	assert.Equal(t, 4, cfg.TabSize)
	assert.Equal(t, 3, cfg.Context)
	assert.Equal(t, 2, cfg.HorizonLines)
	assert.Equal(t, "old=red", cfg.Palette)
}
