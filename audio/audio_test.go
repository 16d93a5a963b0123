// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ik5/pianogen/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_ExtensionKeys(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("WAV", decoder)

	for _, key := range []string{"wav", ".wav", ".WAV", "Wav"} {
		got, ok := registry.Get(key)
		if !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("ogg", &mockDecoder{name: "ogg"})
	registry.Register("wav", &mockDecoder{name: "wav"})
	registry.Register("aiff", &mockDecoder{name: "aiff"})

	want := []string{"aiff", "ogg", "wav"}
	if diff := cmp.Diff(want, registry.Formats()); diff != "" {
		t.Errorf("Registry.Formats() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, _ := registry.Get("wav")
	if got != second {
		t.Error("Registry.Get() did not return the most recently registered decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("wav", &mockDecoder{name: "wav"})
		}()
		go func() {
			defer wg.Done()
			registry.Get("wav")
		}()
	}

	wg.Wait()

	if _, ok := registry.Get("wav"); !ok {
		t.Error("Registry.Get() failed after concurrent registration")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{name: "wav"})

	for b.Loop() {
		registry.Get("wav")
	}
}
