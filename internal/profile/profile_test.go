package profile

import (
	"errors"
	"testing"

	"github.com/sensorbus/canlog/internal/conffile"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())

	pairs := []conffile.Pair{
		{Key: "INTERFACE", Value: "socketcan"},
		{Key: "CHANNEL", Value: "can0"},
		{Key: "MODEL", Value: "A552"},
		{Key: "BITRATE", Value: "250000"},
		{Key: "SYNC", Value: "--sync_hz"},
		{Key: "DRATE", Value: "100"},
	}
	if err := m.Save("bench", pairs); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Load("bench")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	values := make(map[string]string, len(got))
	for _, p := range got {
		values[p.Key] = p.Value
	}
	for _, want := range pairs {
		if values[want.Key] != want.Value {
			t.Errorf("%s: expected %q, got %q", want.Key, want.Value, values[want.Key])
		}
	}

	// Canonical ordering: INTERFACE before SYNC before DRATE.
	pos := make(map[string]int, len(got))
	for i, p := range got {
		pos[p.Key] = i
	}
	if !(pos["INTERFACE"] < pos["SYNC"] && pos["SYNC"] < pos["DRATE"]) {
		t.Errorf("unexpected key order: %v", got)
	}
}

func TestListAndRemove(t *testing.T) {
	m := NewManager(t.TempDir())

	for _, name := range []string{"lab", "field"} {
		if err := m.Save(name, []conffile.Pair{{Key: "NODEID", Value: "1"}}); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}

	names, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "field" || names[1] != "lab" {
		t.Fatalf("unexpected names: %v", names)
	}

	if err := m.Remove("lab"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := m.Remove("lab"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second removal, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveRejectsPathNames(t *testing.T) {
	m := NewManager(t.TempDir())
	if err := m.Save("../escape", nil); err == nil {
		t.Fatal("expected error for path-like name")
	}
}
