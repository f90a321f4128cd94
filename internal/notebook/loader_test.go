package notebook

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseBareBundle(t *testing.T) {
	data := []byte(`{
		"video_metadata": {"title": "T", "channel": "C"},
		"key_points": ["a", "b"],
		"flashcards": [{"front": "2+2?", "back": "4"}],
		"connections": [{"topic": "X", "connection": "Y", "relevance": "Z"}],
		"audio_overview": "script"
	}`)

	nb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if nb.Metadata.Title != "T" || nb.Metadata.Channel != "C" {
		t.Errorf("metadata = %+v, want T/C", nb.Metadata)
	}
	if len(nb.KeyPoints) != 2 {
		t.Errorf("len(KeyPoints) = %d, want 2", len(nb.KeyPoints))
	}
	if len(nb.Flashcards) != 1 || nb.Flashcards[0].Front != "2+2?" || nb.Flashcards[0].Back != "4" {
		t.Errorf("Flashcards = %+v", nb.Flashcards)
	}
	if len(nb.Connections) != 1 || nb.Connections[0].Topic != "X" {
		t.Errorf("Connections = %+v", nb.Connections)
	}
	if nb.AudioOverview != "script" {
		t.Errorf("AudioOverview = %q", nb.AudioOverview)
	}
	if nb.Fingerprint == "" {
		t.Error("Fingerprint not set")
	}
	if nb.HasBriefing() {
		t.Error("HasBriefing() = true for bundle without briefing")
	}
}

func TestParseAPIEnvelope(t *testing.T) {
	data := []byte(`{
		"success": true,
		"data": {
			"video_metadata": {"title": "Inner"},
			"key_points": ["k"],
			"audio_overview": "s"
		}
	}`)

	nb, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if nb.Metadata.Title != "Inner" {
		t.Errorf("Title = %q, want Inner", nb.Metadata.Title)
	}
	if len(nb.KeyPoints) != 1 {
		t.Errorf("len(KeyPoints) = %d, want 1", len(nb.KeyPoints))
	}
}

func TestParseEmptySequences(t *testing.T) {
	// Empty data is a defined rendering branch, never a parse failure.
	nb, err := Parse([]byte(`{"key_points": [], "flashcards": [], "connections": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(nb.KeyPoints) != 0 || len(nb.Flashcards) != 0 || len(nb.Connections) != 0 {
		t.Errorf("expected empty sequences, got %+v", nb)
	}
	if nb.Title() != "Untitled notebook" {
		t.Errorf("Title() = %q", nb.Title())
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Error("Parse() = nil error for invalid input")
	}
}

func TestFingerprintStable(t *testing.T) {
	a, _ := Parse([]byte(`{"key_points":["x"]}`))
	b, _ := Parse([]byte(`{"key_points":["x"]}`))
	c, _ := Parse([]byte(`{"key_points":["y"]}`))
	if a.Fingerprint != b.Fingerprint {
		t.Error("identical bytes produced different fingerprints")
	}
	if a.Fingerprint == c.Fingerprint {
		t.Error("different bytes produced the same fingerprint")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.json")
	if err := os.WriteFile(path, []byte(`{"key_points":["k"]}`), 0644); err != nil {
		t.Fatal(err)
	}

	nb, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if nb.Path != path {
		t.Errorf("Path = %q, want %q", nb.Path, path)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load() = nil error for missing file")
	}
}

func TestTitleFallsBackToFileStem(t *testing.T) {
	tests := []struct {
		name string
		nb   Notebook
		want string
	}{
		{"metadata title wins", Notebook{Metadata: Metadata{Title: "Neural Nets"}, Path: "/n/other.json"}, "Neural Nets"},
		{"file stem", Notebook{Path: "/n/backprop-basics.json"}, "backprop-basics"},
		{"no title, no path", Notebook{}, "Untitled notebook"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.nb.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSample(t *testing.T) {
	nb := Sample()
	if len(nb.KeyPoints) == 0 {
		t.Error("sample has no key points")
	}
	if len(nb.Flashcards) == 0 {
		t.Error("sample has no flashcards")
	}
	if len(nb.Connections) == 0 {
		t.Error("sample has no connections")
	}
	if nb.AudioOverview == "" {
		t.Error("sample has no audio overview")
	}
	if len(nb.Activity) == 0 {
		t.Error("sample has no activity events")
	}
	if !nb.HasBriefing() {
		t.Error("sample has no briefing doc")
	}
}
