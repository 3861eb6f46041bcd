package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{})

	require.NoError(t, rootCmd.Execute())

	want := "Match found!\n" +
		"Group 1: none\n" +
		"Group 2: none\n" +
		"Group 3: none\n" +
		"Group 4: hls-downloader\n" +
		"Group 5: 49\n" +
		"Group 6: 0\n"
	assert.Equal(t, want, buf.String())
}

func TestProvidersCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"providers"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "github")
	assert.Contains(t, out, "GitHub")
	assert.Contains(t, out, "gitlab")
	assert.Contains(t, out, "GitLab")
	assert.Contains(t, out, "owner/repo#123")
	assert.Contains(t, out, "group/project!42")
}

func TestBuildRegistryDetection(t *testing.T) {
	reg := buildRegistry()

	tests := []struct {
		name     string
		input    string
		provider string
	}{
		{"github hash shorthand", "owner/repo#1", "github"},
		{"github URL", "https://github.com/puemos/lareview/pull/123", "github"},
		{"gitlab bang shorthand", "group/sub/proj!42", "gitlab"},
		{"gitlab URL", "https://gitlab.com/group/project/-/merge_requests/42", "gitlab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := reg.Detect(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.provider, p.ID())
		})
	}

	t.Run("prose", func(t *testing.T) {
		_, err := reg.Detect("not a reference at all")
		assert.Error(t, err)
	})

	t.Run("diff text", func(t *testing.T) {
		_, err := reg.Detect("diff --git a/main.go b/main.go")
		assert.Error(t, err)
	})
}
