package sfx

import (
	"fmt"
	"sort"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/spaceranger/prefabs"
)

// Bank holds rendered PCM clips by name.
type Bank struct {
	SampleRate int
	clips      map[string][]byte
}

// NewBank renders every sound in spec.
func NewBank(spec prefabs.AudioSpec) (*Bank, error) {
	rate := spec.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	sr := beep.SampleRate(rate)

	bank := &Bank{SampleRate: rate, clips: make(map[string][]byte, len(spec.Sounds))}
	for name, sound := range spec.Sounds {
		s, err := Synthesize(sound, sr)
		if err != nil {
			return nil, fmt.Errorf("sfx: %s: %w", name, err)
		}
		bank.clips[name] = RenderPCM(s)
	}
	return bank, nil
}

func (b *Bank) Clip(name string) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	clip, ok := b.clips[name]
	return clip, ok
}

func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.clips))
	for name := range b.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Player plays bank clips on an Ebitengine audio context. Each Play starts a
// fresh player so overlapping shots do not cut each other off.
type Player struct {
	ctx    *audio.Context
	bank   *Bank
	volume float64
	muted  bool
}

func NewPlayer(ctx *audio.Context, bank *Bank, volume float64) *Player {
	return &Player{ctx: ctx, bank: bank, volume: volume}
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

func (p *Player) Play(name string) {
	if p == nil || p.ctx == nil || p.muted {
		return
	}
	clip, ok := p.bank.Clip(name)
	if !ok {
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.SetVolume(p.volume)
	player.Play()
}
