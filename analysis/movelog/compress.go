package movelog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"
)

// File extensions recognised as compressed delimited text.
const (
	ExtNone   = ""
	ExtGZIP   = ".gz"
	ExtZstd   = ".zst"
	ExtSnappy = ".sz"
	ExtLZ4    = ".lz4"
)

// Open opens path on fsys and returns its decompressed contents. The codec is
// chosen from the file extension; unknown extensions are read as-is.
func Open(fsys afero.Fs, path string) (io.ReadCloser, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	r, err := decompress(f, ext)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("opening %q decoder for %s: %w", ext, path, err)
	}
	return r, nil
}

type decodedReader struct {
	io.Reader
	closers []func() error
}

// Close releases the decoder before the underlying file.
func (d *decodedReader) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func decompress(f io.ReadCloser, ext string) (io.ReadCloser, error) {
	switch ext {
	case ExtGZIP:
		zr, err := pgzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &decodedReader{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case ExtZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		closeDecoder := func() error { zr.Close(); return nil }
		return &decodedReader{Reader: zr, closers: []func() error{closeDecoder, f.Close}}, nil
	case ExtSnappy:
		return &decodedReader{Reader: snappy.NewReader(f), closers: []func() error{f.Close}}, nil
	case ExtLZ4:
		return &decodedReader{Reader: lz4.NewReader(f), closers: []func() error{f.Close}}, nil
	default:
		return f, nil
	}
}
