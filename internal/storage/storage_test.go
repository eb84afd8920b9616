package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^aadhar_[0-9a-f]{32}\.pdf$`)

func TestGenerateName(t *testing.T) {
	first := GenerateName("aadhar", "my card.pdf")
	second := GenerateName("aadhar", "my card.pdf")

	assert.Regexp(t, namePattern, first)
	assert.Regexp(t, namePattern, second)
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "my card")
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"scan.PNG":            ".PNG",
		"archive.tar.gz":      ".gz",
		"noext":               "",
		"":                    "",
		"evil.p/hp":           "",
		`C:\docs\income.jpeg`: ".jpeg",
		"weird.ph p":          "",
		"trailing.":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Extension(in), "input %q", in)
	}
	assert.Empty(t, Extension("long."+strings.Repeat("x", 20)))
}

func TestNewLocal_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	sink, err := NewLocal(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, sink.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = NewLocal("")
	assert.Error(t, err)
}

func TestLocal_Save(t *testing.T) {
	sink, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	path, err := sink.Save(context.Background(), strings.NewReader("pan-bytes"), "pan_abc.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sink.Dir(), "pan_abc.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pan-bytes", string(data))

	_, err = sink.Save(context.Background(), strings.NewReader("again"), "pan_abc.png")
	assert.Error(t, err, "existing files are never overwritten")
}

func TestLocal_SaveRejectsPaths(t *testing.T) {
	sink, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.txt", "sub/file.txt", ".."} {
		_, err := sink.Save(context.Background(), strings.NewReader("x"), name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestLocal_SaveHonoursCancelledContext(t *testing.T) {
	sink, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sink.Save(ctx, strings.NewReader("x"), "a.txt")
	assert.ErrorIs(t, err, context.Canceled)
}
