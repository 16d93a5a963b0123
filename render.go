// SPDX-License-Identifier: EPL-2.0

package pianogen

import (
	"fmt"

	"github.com/ik5/pianogen/audio"
	"github.com/ik5/pianogen/formats/wav"
	"github.com/ik5/pianogen/pitch"
	"github.com/ik5/pianogen/synth"
)

// Fixed rendering parameters for the piano asset set.
const (
	SampleRate = 44100
	Duration   = 4.0 // seconds per note
	BitDepth   = 16
	Channels   = 1
	Extension  = ".wav"
)

// Params controls how a note is rendered and stored.
type Params struct {
	Format   audio.Format
	Duration float64
	Headroom float64
}

// DefaultParams returns the parameters the asset set is generated with.
func DefaultParams() Params {
	return Params{
		Format: audio.Format{
			SampleRate: SampleRate,
			BitDepth:   BitDepth,
			Channels:   Channels,
		},
		Duration: Duration,
		Headroom: audio.DefaultHeadroom,
	}
}

// Validate checks the parameters before any note is rendered.
func (p Params) Validate() error {
	if err := p.Format.Validate(); err != nil {
		return err
	}
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", synth.ErrInvalidParams, p.Duration)
	}
	if p.Headroom <= 0 || p.Headroom > 1 {
		return fmt.Errorf("%w: headroom %v", synth.ErrInvalidParams, p.Headroom)
	}

	return nil
}

// EncodedSize is the exact file size a note rendered with p occupies.
func (p Params) EncodedSize() int {
	return wav.HeaderSize + audio.FrameCount(p.Format.SampleRate, p.Duration)*p.Format.BlockAlign()
}

// FileName returns the asset file name for n, e.g. "Cs4.wav".
func FileName(n pitch.Note) string {
	return n.FileStem + Extension
}

// Renderer turns notes into encoded WAV files. It is safe for concurrent use.
type Renderer struct {
	synth  *synth.Synthesizer
	params Params
}

// NewRenderer validates params and returns a Renderer using s. A nil s
// means the default synthesizer.
func NewRenderer(s *synth.Synthesizer, params Params) (*Renderer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		s = synth.New()
	}

	return &Renderer{synth: s, params: params}, nil
}

// DefaultRenderer renders with the default synthesizer and parameters.
func DefaultRenderer() *Renderer {
	return &Renderer{synth: synth.New(), params: DefaultParams()}
}

func (r *Renderer) Params() Params { return r.params }

// Buffer synthesizes and normalizes n without encoding it.
func (r *Renderer) Buffer(n pitch.Note) (audio.Buffer, error) {
	raw, err := r.synth.Synthesize(n.Frequency, r.params.Duration, r.params.Format.SampleRate)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("synthesizing %s: %w", n.Label(), err)
	}

	return audio.Normalize(raw, r.params.Headroom), nil
}

// Render returns the complete WAV file for n.
func (r *Renderer) Render(n pitch.Note) ([]byte, error) {
	buf, err := r.Buffer(n)
	if err != nil {
		return nil, err
	}

	data, err := wav.Encode(buf, r.params.Format)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", n.Label(), err)
	}

	return data, nil
}

// Render renders n with the default synthesizer and the given params.
func Render(n pitch.Note, params Params) ([]byte, error) {
	r, err := NewRenderer(synth.New(), params)
	if err != nil {
		return nil, err
	}

	return r.Render(n)
}

// RenderIndex is a convenience wrapper that renders the note at a keyboard
// index with the default renderer.
func RenderIndex(index int) ([]byte, error) {
	n, err := pitch.New(index)
	if err != nil {
		return nil, err
	}

	return DefaultRenderer().Render(n)
}
