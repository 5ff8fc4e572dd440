package dds

import "encoding/binary"

// DDS_HEADER plus magic, all fields little-endian.
const headerSize = 128

const (
	flagCaps        = 0x1
	flagHeight      = 0x2
	flagWidth       = 0x4
	flagPixelFormat = 0x1000
	flagMipMapCount = 0x20000
	flagLinearSize  = 0x80000

	pfFourCC = 0x4

	capsComplex = 0x8
	capsTexture = 0x1000
	capsMipMap  = 0x400000
)

// headerBytes lays out the 128-byte container header. Width and height
// are the level-0 texture dimensions; linearSize is the byte length of
// the level-0 compressed data.
func headerBytes(w, h, mipCount int, fourCC string, linearSize int) []byte {
	buf := make([]byte, headerSize)
	le := binary.LittleEndian

	copy(buf[0:], "DDS ")
	le.PutUint32(buf[4:], 124)

	flags := uint32(flagCaps | flagHeight | flagWidth | flagPixelFormat | flagLinearSize)
	caps := uint32(capsTexture)
	if mipCount > 1 {
		flags |= flagMipMapCount
		caps |= capsComplex | capsMipMap
	}
	le.PutUint32(buf[8:], flags)
	le.PutUint32(buf[12:], uint32(h))
	le.PutUint32(buf[16:], uint32(w))
	le.PutUint32(buf[20:], uint32(linearSize))
	le.PutUint32(buf[28:], uint32(mipCount))

	// DDS_PIXELFORMAT at offset 76
	le.PutUint32(buf[76:], 32)
	le.PutUint32(buf[80:], pfFourCC)
	copy(buf[84:], fourCC)

	le.PutUint32(buf[108:], caps)
	return buf
}
