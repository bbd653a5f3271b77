package sfx

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

const renderChunk = 512

// RenderPCM drains s into signed 16-bit little-endian stereo PCM, the format
// Ebitengine's audio players read.
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, renderChunk)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
