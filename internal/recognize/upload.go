package recognize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxUploadSize caps audio and image uploads at 10 MB.
const MaxUploadSize = 10 * 1024 * 1024

// Upload describes a file to be sent to a recognition backend. Size must be
// the exact byte count of the content behind Reader.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

var extContentTypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadFromFile opens path and builds an Upload with the content type
// inferred from the file extension. The caller owns closing the returned
// file via Close.
func UploadFromFile(path string) (Upload, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return Upload{}, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return Upload{}, nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	up := Upload{
		Reader:      f,
		Filename:    filepath.Base(path),
		ContentType: extContentTypes[ext],
		Size:        info.Size(),
	}
	return up, f.Close, nil
}
