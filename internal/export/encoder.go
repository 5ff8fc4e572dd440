package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"skyrim-pbrgen/internal/fileio"
)

var (
	ErrEncoderUnavailable = errors.New("encoder unavailable")
	ErrEncodeFailed       = errors.New("encode failed")
	ErrPartialOutput      = errors.New("partial output")
)

// ContainerEncoder turns a finished image into the bytes of its
// on-disk container.
type ContainerEncoder interface {
	Encode(ctx context.Context, img *image.NRGBA) ([]byte, error)
	Ext() string
}

// WriteTexture encodes img and writes it atomically under pathNoExt
// plus the encoder's extension. A missing or failing encoder degrades
// to a PNG next to where the container would have been, reported via
// the returned warning; cancellation and filesystem errors do not
// degrade. Returns the path actually written.
func WriteTexture(ctx context.Context, enc ContainerEncoder, pathNoExt string, img *image.NRGBA) (string, string, error) {
	if enc == nil {
		path := pathNoExt + ".png"
		if err := fileio.WritePNG(path, img); err != nil {
			return "", "", err
		}
		return path, fmt.Sprintf("%s: %v, wrote png", filepath.Base(path), ErrEncoderUnavailable), nil
	}

	data, err := enc.Encode(ctx, img)
	if err != nil {
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}
		path := pathNoExt + ".png"
		if werr := fileio.WritePNG(path, img); werr != nil {
			return "", "", werr
		}
		return path, fmt.Sprintf("%s: %v: %v, wrote png", filepath.Base(path), ErrEncodeFailed, err), nil
	}

	path := pathNoExt + enc.Ext()
	if err := fileio.WriteFileAtomic(path, data); err != nil {
		return "", "", err
	}
	return path, "", nil
}
