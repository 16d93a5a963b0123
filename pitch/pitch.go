// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Keyboard indices use MIDI numbering: 24 is C1, 69 is A4 and 96 is C7.
const (
	Lowest  = 24
	Highest = 96

	A4          = 69
	ReferenceHz = 440.0
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Note is a key on the keyboard and everything derived from its index.
type Note struct {
	Index     int
	Frequency float64
	Name      string // "C#"
	Octave    int
	FileStem  string // "Cs4"
}

// Label returns the display name with octave, e.g. "C#4".
func (n Note) Label() string {
	return n.Name + strconv.Itoa(n.Octave)
}

func (n Note) String() string {
	return fmt.Sprintf("%s (%.2f Hz)", n.Label(), n.Frequency)
}

// Frequency returns the equal-tempered frequency of index, 440 Hz at A4.
func Frequency(index int) float64 {
	return ReferenceHz * math.Pow(2, float64(index-A4)/12)
}

// Name returns the chromatic name of index ("C", "C#", ...).
func Name(index int) string {
	return names[mod12(index)]
}

// Octave returns the scientific pitch octave, so that index 60 is in octave 4.
func Octave(index int) int {
	return (index-mod12(index))/12 - 1
}

// FileStem returns a filesystem safe name: '#' becomes 's', octave appended.
func FileStem(index int) string {
	return strings.ReplaceAll(Name(index), "#", "s") + strconv.Itoa(Octave(index))
}

func mod12(index int) int {
	return ((index % 12) + 12) % 12
}

// Validate reports ErrOutOfRange for indices outside [Lowest, Highest].
func Validate(index int) error {
	if index < Lowest || index > Highest {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, index, Lowest, Highest)
	}

	return nil
}

// New builds the Note for index.
func New(index int) (Note, error) {
	if err := Validate(index); err != nil {
		return Note{}, err
	}

	return Note{
		Index:     index,
		Frequency: Frequency(index),
		Name:      Name(index),
		Octave:    Octave(index),
		FileStem:  FileStem(index),
	}, nil
}

// Range returns every note from lo to hi inclusive. Both ends are checked
// before any note is built.
func Range(lo, hi int) ([]Note, error) {
	if err := Validate(lo); err != nil {
		return nil, err
	}
	if err := Validate(hi); err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: %d > %d", ErrEmptyRange, lo, hi)
	}

	notes := make([]Note, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		n, _ := New(i)
		notes = append(notes, n)
	}

	return notes, nil
}
