package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sensorbus/canlog/internal/conffile"
)

func pairsToMap(pairs []conffile.Pair) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}

func TestCollectAllDefaults(t *testing.T) {
	// One empty answer per prompt.
	in := strings.NewReader(strings.Repeat("\n", 15))
	pairs, err := collectPairs(in, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("collectPairs: %v", err)
	}

	got := pairsToMap(pairs)
	want := map[string]string{
		"BITRATE": "250000",
		"SAMPLE":  "1000",
		"DRATE":   "100",
		"SYNC":    "--sync_hz",
		"CSV":     "--outfile",
		"TEMPC":   "--tempc",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestCollectSyncAnsweredNo(t *testing.T) {
	answers := []string{
		"",    // INTERFACE
		"",    // CHANNEL
		"",    // MODEL
		"",    // BITRATE
		"",    // BITRATE_NEW
		"",    // NODEID
		"",    // NODEID_NEW
		"500", // SAMPLE
		"n",   // SYNC
		"200", // DRATE
		"",    // FILTER
		"",    // CSV
		"",    // TEMPC
		"",    // NOSCALE
		"n",   // SAVECFG
	}
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	pairs, err := collectPairs(in, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("collectPairs: %v", err)
	}

	got := pairsToMap(pairs)
	if got["SYNC"] != "--drate" {
		t.Errorf("SYNC: expected --drate, got %q", got["SYNC"])
	}
	if got["SAMPLE"] != "500" || got["DRATE"] != "200" {
		t.Errorf("unexpected sample/drate: %q/%q", got["SAMPLE"], got["DRATE"])
	}
	if got["SAVECFG"] != "" {
		t.Errorf("SAVECFG: expected empty, got %q", got["SAVECFG"])
	}
}

func TestCollectWriteLoadSession(t *testing.T) {
	in := strings.NewReader(strings.Repeat("\n", 15))
	pairs, err := collectPairs(in, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("collectPairs: %v", err)
	}

	store := conffile.NewStore(filepath.Join(t.TempDir(), "conf_can.txt"))
	if err := store.Write(pairs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	sess, err := store.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if sess.Bitrate != "250000" || sess.Sync != "--sync_hz" || sess.CSV != "--outfile" {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestDefaultPairsMatchesEmptyAnswers(t *testing.T) {
	in := strings.NewReader(strings.Repeat("\n", 15))
	collected, err := collectPairs(in, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("collectPairs: %v", err)
	}

	defaults := defaultPairs()
	if len(defaults) != len(collected) {
		t.Fatalf("length mismatch: %d vs %d", len(defaults), len(collected))
	}
	for i := range defaults {
		if defaults[i] != collected[i] {
			t.Errorf("pair %d: %v vs %v", i, defaults[i], collected[i])
		}
	}
}
