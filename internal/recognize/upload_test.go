package recognize

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFromFile(t *testing.T) {
	tests := []struct {
		name            string
		filename        string
		wantContentType string
	}{
		{name: "wav", filename: "clip.wav", wantContentType: "audio/wav"},
		{name: "mp3", filename: "clip.mp3", wantContentType: "audio/mpeg"},
		{name: "uppercase extension", filename: "photo.PNG", wantContentType: "image/png"},
		{name: "jpeg", filename: "photo.jpeg", wantContentType: "image/jpeg"},
		{name: "unknown extension", filename: "clip.flac", wantContentType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

			up, done, err := UploadFromFile(path)
			require.NoError(t, err)
			defer func() { _ = done() }()

			assert.Equal(t, tt.filename, up.Filename)
			assert.Equal(t, tt.wantContentType, up.ContentType)
			assert.Equal(t, int64(7), up.Size)

			data, err := io.ReadAll(up.Reader)
			require.NoError(t, err)
			assert.Equal(t, "content", string(data))
		})
	}
}

func TestUploadFromFileMissing(t *testing.T) {
	_, _, err := UploadFromFile(filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
}
