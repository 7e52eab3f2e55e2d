package ioutils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Open opens path for reading, transparently unwrapping gzip when the
// file carries a .gz extension or the gzip magic bytes.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".gz" {
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &reader{r: zr, close: func() error { _ = zr.Close(); return f.Close() }}, nil
	}
	br := bufio.NewReader(f)
	if b, err := br.Peek(2); err == nil && len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &reader{r: zr, close: f.Close}, nil
	}
	return &reader{r: br, close: f.Close}, nil
}

// Create opens path for writing, gzip-compressing when it ends in .gz.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".gz" {
		zw := gzip.NewWriter(f)
		return &writer{w: zw, close: func() error { _ = zw.Close(); return f.Close() }}, nil
	}
	bw := bufio.NewWriter(f)
	return &writer{w: bw, close: func() error { _ = bw.Flush(); return f.Close() }}, nil
}

// StripGz removes a trailing .gz so format dispatch sees the real extension.
func StripGz(path string) string {
	return strings.TrimSuffix(path, ".gz")
}

type reader struct {
	r     io.Reader
	close func() error
}

func (w *reader) Read(p []byte) (int, error) { return w.r.Read(p) }
func (w *reader) Close() error               { return w.close() }

type writer struct {
	w     io.Writer
	close func() error
}

func (w *writer) Write(p []byte) (int, error) { return w.w.Write(p) }
func (w *writer) Close() error                { return w.close() }
