// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/pianogen"
	"github.com/ik5/pianogen/pitch"
)

// ManifestName is the file written next to the notes.
const ManifestName = "manifest.yaml"

// Manifest describes a generated asset set.
type Manifest struct {
	Format ManifestFormat `yaml:"format"`
	Notes  []ManifestNote `yaml:"notes"`
}

type ManifestFormat struct {
	SampleRate int     `yaml:"sampleRate"`
	BitDepth   int     `yaml:"bitDepth"`
	Channels   int     `yaml:"channels"`
	Duration   float64 `yaml:"duration"` // seconds
}

type ManifestNote struct {
	Index     int     `yaml:"index"`
	Name      string  `yaml:"name"`
	Octave    int     `yaml:"octave"`
	File      string  `yaml:"file"`
	Frequency float64 `yaml:"frequency"`
	Bytes     int     `yaml:"bytes"`
}

// NewManifest builds the manifest for files rendered with params.
func NewManifest(params pianogen.Params, files []FileResult) Manifest {
	m := Manifest{
		Format: ManifestFormat{
			SampleRate: params.Format.SampleRate,
			BitDepth:   params.Format.BitDepth,
			Channels:   params.Format.Channels,
			Duration:   params.Duration,
		},
		Notes: make([]ManifestNote, 0, len(files)),
	}

	for _, f := range files {
		m.Notes = append(m.Notes, manifestNote(f.Note, f.Bytes))
	}

	return m
}

func manifestNote(n pitch.Note, size int) ManifestNote {
	return ManifestNote{
		Index:     n.Index,
		Name:      n.Name,
		Octave:    n.Octave,
		File:      pianogen.FileName(n),
		Frequency: n.Frequency,
		Bytes:     size,
	}
}

// WriteManifest marshals m to path.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	return WriteFile(path, data)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decoding manifest: %w", err)
	}

	return m, nil
}
