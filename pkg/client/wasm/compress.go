package wasm

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip reports whether code starts with the gzip magic number.
func IsGzip(code []byte) bool {
	return bytes.HasPrefix(code, gzipMagic)
}

// GzipCode compresses wasm code for upload; the chain stores the
// decompressed code. Already compressed code is returned unchanged.
func GzipCode(code []byte) ([]byte, error) {
	if IsGzip(code) {
		return code, nil
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, ErrCompress.Wrap(err.Error())
	}
	if _, err = zw.Write(code); err != nil {
		return nil, ErrCompress.Wrap(err.Error())
	}
	if err = zw.Close(); err != nil {
		return nil, ErrCompress.Wrap(err.Error())
	}
	return buf.Bytes(), nil
}

// GunzipCode is the inverse of GzipCode. Uncompressed code is returned unchanged.
func GunzipCode(code []byte) ([]byte, error) {
	if !IsGzip(code) {
		return code, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(code))
	if err != nil {
		return nil, ErrCompress.Wrap(err.Error())
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err = buf.ReadFrom(zr); err != nil {
		return nil, ErrCompress.Wrap(err.Error())
	}
	return buf.Bytes(), nil
}
