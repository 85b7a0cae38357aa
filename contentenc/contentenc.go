// Package contentenc implements the compression stage of a Matroska
// track's ContentEncodings pipeline (ContentCompAlgo, per the element
// table in the matroska package's schema.go).
//
// Algorithm 0 (zlib) is mandatory per the Matroska specification and is
// backed by klauspost/compress/zlib. The private range (algorithm ids
// >= 1 << 16, reserved for application-specific use) is bound here to
// pierrec/lz4/v4 as a representative private codec, the way mebo's
// compress package registers one Codec per compress/*.go file behind a
// small factory (compress/codec.go's CreateCodec/GetCodec). zstd is not
// wired: the ecosystem's native implementation (valyala/gozstd) is cgo,
// which would make this package no longer pure Go for one optional
// codec — see DESIGN.md.
package contentenc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"
)

// Algo identifies a ContentCompAlgo value.
type Algo uint64

const (
	AlgoZlib    Algo = 0
	AlgoLZ4Priv Algo = 1 << 16
)

// Codec compresses and decompresses one track's content-encoded payloads.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Lookup returns the Codec registered for algo.
func Lookup(algo uint64) (Codec, error) {
	switch Algo(algo) {
	case AlgoZlib:
		return zlibCodec{}, nil
	case AlgoLZ4Priv:
		return lz4Codec{}, nil
	default:
		return nil, fmt.Errorf("contentenc: unsupported ContentCompAlgo %d", algo)
	}
}

type zlibCodec struct{}

func (zlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

type lz4Codec struct{}

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	var c lz4.Compressor
	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 && len(data) > 0 {
		// Incompressible input: CompressBlock leaves dst empty rather than
		// emitting a larger-than-source block.
		return nil, fmt.Errorf("contentenc: lz4 block incompressible")
	}
	return dst[:n], nil
}

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	dst := make([]byte, len(data)*4+64)
	for {
		n, err := lz4.UncompressBlock(data, dst)
		if err == nil {
			return dst[:n], nil
		}
		if err == lz4.ErrInvalidSourceShortBuffer && len(dst) < 256*1024*1024 {
			dst = make([]byte, len(dst)*2)
			continue
		}
		return nil, err
	}
}
