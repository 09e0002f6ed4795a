// Package profile stores named copies of the configuration record as TOML
// files so recurring capture setups can be reapplied without re-prompting.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/sensorbus/canlog/internal/conffile"
	"github.com/sensorbus/canlog/internal/params"
)

// ErrNotFound is returned when the named profile does not exist.
var ErrNotFound = errors.New("profile not found")

// Profile is the on-disk form. Values maps record keys to values.
type Profile struct {
	Values map[string]string `toml:"values"`
}

// Manager reads and writes profiles under a directory, one <name>.toml each.
type Manager struct {
	dir string
}

// NewManager creates a Manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+".toml")
}

// Save stores the pairs under the given name, overwriting any existing
// profile with that name.
func (m *Manager) Save(name string, pairs []conffile.Pair) error {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid profile name %q", name)
	}
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}

	p := Profile{Values: make(map[string]string, len(pairs))}
	for _, pair := range pairs {
		p.Values[pair.Key] = pair.Value
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(m.path(name), data, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Load returns the named profile's pairs in canonical key order; keys
// outside the known schema follow, sorted.
func (m *Manager) Load(name string) ([]conffile.Pair, error) {
	data, err := os.ReadFile(m.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", name, err)
	}

	seen := make(map[string]bool, len(p.Values))
	var pairs []conffile.Pair
	for _, key := range params.Keys() {
		if v, ok := p.Values[key]; ok {
			pairs = append(pairs, conffile.Pair{Key: key, Value: v})
			seen[key] = true
		}
	}
	var extra []string
	for key := range p.Values {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		pairs = append(pairs, conffile.Pair{Key: key, Value: p.Values[key]})
	}
	return pairs, nil
}

// List returns the saved profile names, sorted.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes the named profile.
func (m *Manager) Remove(name string) error {
	if err := os.Remove(m.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("removing profile: %w", err)
	}
	return nil
}
