package encoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"math"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// ihdrEnd is the offset just past the IHDR chunk: signature(8) +
// length(4) + type(4) + data(13) + crc(4).
const ihdrEnd = 8 + 4 + 4 + 13 + 4

// PNGEncoder encodes images to PNG using Go's standard library and, when DPI
// is set, records the physical pixel density in a pHYs chunk.
type PNGEncoder struct {
	DPI int
}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }

func (e *PNGEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	if e.DPI <= 0 {
		return buf.Bytes(), nil
	}
	return withPhys(buf.Bytes(), e.DPI)
}

// pixelsPerMetre converts dots per inch to the pHYs unit.
func pixelsPerMetre(dpi int) uint32 {
	return uint32(math.Round(float64(dpi) / 0.0254))
}

// withPhys inserts a pHYs chunk directly after IHDR. image/png never writes
// one, so there is nothing to replace.
func withPhys(data []byte, dpi int) ([]byte, error) {
	if len(data) < ihdrEnd || !bytes.Equal(data[:8], pngSignature) {
		return nil, errors.New("png: malformed encoder output")
	}

	ppm := pixelsPerMetre(dpi)
	chunk := make([]byte, 0, 4+4+9+4)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: metre
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, data[ihdrEnd:]...)
	return out, nil
}

// ReadDPI returns the horizontal and vertical DPI stored in a PNG's pHYs
// chunk. ok is false when the chunk is absent or has no metric unit.
func ReadDPI(data []byte) (x, y int, ok bool) {
	if len(data) < 8 || !bytes.Equal(data[:8], pngSignature) {
		return 0, 0, false
	}
	for p := 8; p+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[p:]))
		typ := string(data[p+4 : p+8])
		body := p + 8
		if body+n+4 > len(data) {
			return 0, 0, false
		}
		switch typ {
		case "pHYs":
			if n != 9 || data[body+8] != 1 {
				return 0, 0, false
			}
			px := binary.BigEndian.Uint32(data[body:])
			py := binary.BigEndian.Uint32(data[body+4:])
			return toDPI(px), toDPI(py), true
		case "IDAT", "IEND":
			return 0, 0, false
		}
		p = body + n + 4
	}
	return 0, 0, false
}

func toDPI(ppm uint32) int {
	return int(math.Round(float64(ppm) * 0.0254))
}
