package sound

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// maxDownload caps the size of a sound fetched over http.
const maxDownload = 32 << 20

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error {
	return nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://")
}

// ext returns the lowercased extension of a file path or of a URL's path.
func ext(src string) string {
	if isURL(src) {
		if u, err := url.Parse(src); err == nil {
			return strings.ToLower(path.Ext(u.Path))
		}
	}

	return strings.ToLower(filepath.Ext(src))
}

// open returns the raw bytes of src. Remote sources are read fully into
// memory so the decoded stream stays seekable.
func open(
	ctx context.Context,
	client *http.Client,
	src string,
) (io.ReadCloser, error) {
	if !isURL(src) {
		return os.Open(src)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errFetchSound.Fmt(src, resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxDownload))
	if err != nil {
		return nil, err
	}

	return memFile{bytes.NewReader(b)}, nil
}

// decode returns an audio stream for src.
func decode(
	ctx context.Context,
	client *http.Client,
	src string,
) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	e := ext(src)

	switch e {
	case ".ogg", ".mp3", ".flac", ".wav":
	default:
		return nil, format, errInvalidSoundFormat.Fmt(src)
	}

	f, err := open(ctx, client, src)
	if err != nil {
		return nil, format, err
	}

	switch e {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, format, err
	}

	return stream, format, nil
}
