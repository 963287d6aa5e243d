package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTextInput(t *testing.T) {
	assert.True(t, IsTextInput("top.txt"))
	assert.True(t, IsTextInput("profile.TOP"))
	assert.True(t, IsTextInput("pprof.out"))
	assert.False(t, IsTextInput("cpu.pb.gz"))
	assert.False(t, IsTextInput("cpu.pprof"))
	assert.False(t, IsTextInput("cpu"))
}

func TestProfileName(t *testing.T) {
	assert.Equal(t, "cpu", ProfileName("/tmp/profiles/cpu.pb.gz"))
	assert.Equal(t, "cpu", ProfileName("cpu.pprof"))
	assert.Equal(t, "top", ProfileName("top.txt"))
	assert.Equal(t, "cpu", ProfileName("cpu"))
}

func TestLoadTopOutput_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleTopOutput), 0644))

	raw, err := LoadTopOutput(context.Background(), path, 0)
	require.NoError(t, err)
	assert.Equal(t, sampleTopOutput, raw)
}

func TestLoadTopOutput_MissingTextFile(t *testing.T) {
	_, err := LoadTopOutput(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), 0)
	assert.Error(t, err)
}
