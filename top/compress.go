package top

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// *zstd.Decoder has a Close method that returns nothing, so
// it's not an io.ReadCloser by itself.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compression(fname string) string {
	return strings.ToLower(filepath.Ext(fname))
}

// newDecompressor returns a reader that decompresses r according to
// the extension of fname. Unknown extensions are read as plain text.
func newDecompressor(fname string, r io.Reader) (io.ReadCloser, error) {
	switch compression(fname) {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	default:
		return io.NopCloser(r), nil
	}
}

// newCompressor is the writing counterpart of newDecompressor.
// The returned writer must be closed for the data to be complete.
func newCompressor(fname string, w io.Writer) (io.WriteCloser, error) {
	switch compression(fname) {
	case ".gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return nopWriteCloser{w}, nil
	}
}
