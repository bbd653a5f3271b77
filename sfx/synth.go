// Package sfx synthesizes the game's sound effects with beep and plays them
// through Ebitengine's audio context.
package sfx

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/milk9111/spaceranger/prefabs"
)

// Synthesize builds the streamer described by spec: the tones in sequence,
// mixed with a decaying noise burst when Noise is set.
func Synthesize(spec prefabs.SfxSpec, sr beep.SampleRate) (beep.Streamer, error) {
	var parts []beep.Streamer

	if len(spec.Tones) > 0 {
		tones := make([]beep.Streamer, 0, len(spec.Tones))
		for i, tone := range spec.Tones {
			if tone.Freq <= 0 || tone.Duration <= 0 {
				return nil, fmt.Errorf("sfx: tone %d needs a positive freq and duration", i)
			}
			sine, err := generators.SineTone(sr, tone.Freq)
			if err != nil {
				return nil, fmt.Errorf("sfx: tone %d: %w", i, err)
			}
			tones = append(tones, beep.Take(sr.N(seconds(tone.Duration)), sine))
		}
		parts = append(parts, beep.Seq(tones...))
	}

	if spec.Noise > 0 {
		parts = append(parts, newNoiseBurst(sr.N(seconds(spec.Noise))))
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("sfx: sound has neither tones nor noise")
	}

	return newVolume(beep.Mix(parts...), spec.Volume), nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// noiseBurst is white noise fading linearly to silence over total samples.
type noiseBurst struct {
	rng   *rand.Rand
	pos   int
	total int
}

func newNoiseBurst(total int) *noiseBurst {
	return &noiseBurst{rng: rand.New(rand.NewSource(int64(total))), total: total}
}

func (n *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}
		fade := 1 - float64(n.pos)/float64(n.total)
		v := (n.rng.Float64()*2 - 1) * fade
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return len(samples), true
}

func (n *noiseBurst) Err() error { return nil }
