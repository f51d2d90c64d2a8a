package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/griffnb/imagename-gen/internal/console"
)

const (
	assetsDir    = "../../testing/testdata/Assets.xcassets"
	expectedFile = "../../testing/testdata/expected/ImageName.swift"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func (r result) exitCode() int {
	if r.err == nil {
		return 0
	}
	var exitErr cli.ExitCoder
	if errors.As(r.err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	prev := console.Logger
	console.Logger = console.New(&stdout, &stderr, false)
	t.Cleanup(func() {
		console.Logger = prev
	})

	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"imagename-gen"}, args...))

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestMain_NotEnoughArguments(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ImageName.swift")

	for _, args := range [][]string{nil, {assetsDir}} {
		res := run(t, args...)
		assert.Equal(t, 1, res.exitCode())
		assert.Equal(t, usageText, res.stdout)
	}

	_, err := os.Stat(dest)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMain_Generate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ImageName.swift")

	res := run(t, "--config", "", assetsDir, dest)
	require.NoError(t, res.err)
	assert.Equal(t, "Loading image names into "+dest+"\n", res.stdout)
	assert.Empty(t, res.stderr)

	expected, err := os.ReadFile(expectedFile)
	require.NoError(t, err)
	actual, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual))
}

func TestMain_Quiet(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ImageName.swift")

	res := run(t, "-q", assetsDir, dest)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.FileExists(t, dest)
}

func TestMain_DestinationNotWritable(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "ImageName.swift")

	res := run(t, assetsDir, dest)
	assert.Equal(t, 1, res.exitCode())
	assert.Contains(t, res.err.Error(), "couldn't open file "+dest+" for writing")
}

func TestMain_SourceMissing(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ImageName.swift")

	res := run(t, filepath.Join(t.TempDir(), "nope"), dest)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "warning: could not read directory")

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "enum ImageName: String {\n}\n")
}

func TestMain_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "imagenames.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("enumName: Asset\nimportModule: DesignKit\ndepth: 1\n"), 0o644))
	dest := filepath.Join(dir, "Asset.swift")

	res := run(t, "-c", cfg, "--import", "UIKit", assetsDir, dest)
	require.NoError(t, res.err)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, "import UIKit\n")
	assert.Contains(t, out, "\tenum Asset: String {\n\t\tcase error = \"Error\"\n")
}

func TestMain_HelpDescribesImportRequirement(t *testing.T) {
	res := run(t, "--help")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "--import value")
	assert.Contains(t, res.stdout, "must provide UIImage and UIImageView")
}

func TestMain_ConfigFileInvalid(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "imagenames.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("unknown: true\n"), 0o644))

	res := run(t, "-c", cfg, assetsDir, filepath.Join(t.TempDir(), "out.swift"))
	assert.Equal(t, 1, res.exitCode())
}

func TestMain_OverridesFlag(t *testing.T) {
	dir := t.TempDir()
	overrides := filepath.Join(dir, "overrides")
	require.NoError(t, os.WriteFile(overrides, []byte("// generated icons\nskip user_profile_icon\n"), 0o644))
	dest := filepath.Join(dir, "ImageName.swift")

	res := run(t, "--overrides", overrides, assetsDir, dest)
	require.NoError(t, res.err)

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "userProfileIcon")
	assert.Contains(t, string(b), "case iconCamera = \"icon_camera\"")
}
