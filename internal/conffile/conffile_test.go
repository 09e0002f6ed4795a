package conffile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf_can.txt")
	store := NewStore(path)

	pairs := []Pair{
		{"INTERFACE", "socketcan"},
		{"CHANNEL", "can0"},
		{"MODEL", "A552"},
		{"BITRATE", "250000"},
		{"BITRATE_NEW", ""},
		{"NODEID", "1"},
		{"SAMPLE", "1000"},
		{"SYNC", "--sync_hz"},
		{"DRATE", "100"},
		{"FILTER", "K512_FC460"},
		{"CSV", "--outfile"},
		{"TEMPC", "--tempc"},
	}
	if err := store.Write(pairs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(pairs) {
		t.Fatalf("expected %d pairs, got %d", len(pairs), len(got))
	}
	for i, p := range pairs {
		if got[i] != p {
			t.Errorf("pair %d: expected %v, got %v", i, p, got[i])
		}
	}
}

func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf_can.txt")
	store := NewStore(path)

	if err := store.Write([]Pair{{"BITRATE", "1000000"}, {"NODEID", "2"}}); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := store.Write([]Pair{{"BITRATE", "250000"}}); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0].Value != "250000" {
		t.Fatalf("expected single rewritten pair, got %v", got)
	}
}

func TestSessionMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "conf_can.txt"))

	if _, err := store.Session(); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestSessionBinding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf_can.txt")
	store := NewStore(path)

	pairs := []Pair{
		{"INTERFACE", "pcan"},
		{"CHANNEL", "PCAN_USBBUS1"},
		{"MODEL", "G552PC1"},
		{"BITRATE", "500000"},
		{"NODEID", "3"},
		{"SAMPLE", "200"},
		{"SYNC", "--drate"},
		{"DRATE", "50"},
		{"CSV", ""},
		{"TEMPC", "--tempc"},
	}
	if err := store.Write(pairs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	sess, err := store.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if sess.Interface != "pcan" || sess.Channel != "PCAN_USBBUS1" {
		t.Errorf("unexpected interface/channel: %q/%q", sess.Interface, sess.Channel)
	}
	if sess.Model != "G552PC1" || sess.Bitrate != "500000" || sess.NodeID != "3" {
		t.Errorf("unexpected model/bitrate/node: %q/%q/%q", sess.Model, sess.Bitrate, sess.NodeID)
	}
	if sess.Sync != "--drate" || sess.Drate != "50" {
		t.Errorf("unexpected sync/drate: %q/%q", sess.Sync, sess.Drate)
	}
	if sess.CSV != "" {
		t.Errorf("expected empty CSV token, got %q", sess.CSV)
	}

	// Keys never written stay unset downstream.
	if sess.Filter != "" || sess.Noscale != "" {
		t.Errorf("expected unset keys to be empty, got filter=%q noscale=%q", sess.Filter, sess.Noscale)
	}

	// The loader binds into the process environment for child inheritance.
	if os.Getenv("MODEL") != "G552PC1" {
		t.Errorf("expected MODEL in environment, got %q", os.Getenv("MODEL"))
	}
}
