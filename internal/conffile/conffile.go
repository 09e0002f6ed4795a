// Package conffile persists the logging parameters as newline-delimited
// KEY=VALUE pairs (conf_can.txt) and loads them back into the process
// environment for the dispatcher.
package conffile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultName is the configuration file written next to the invocation,
// matching the file the original script families used.
const DefaultName = "conf_can.txt"

// ErrNotExist is returned when the configuration file has not been written yet.
var ErrNotExist = errors.New("configuration file not found")

// Pair is a single KEY=VALUE entry. Order is preserved for readability.
type Pair struct {
	Key   string
	Value string
}

// Session is the loaded configuration record. All fields are strings:
// values are forwarded to the vendor logger verbatim, malformed or not.
type Session struct {
	Interface  string `envconfig:"INTERFACE"`
	Channel    string `envconfig:"CHANNEL"`
	Model      string `envconfig:"MODEL"`
	Bitrate    string `envconfig:"BITRATE"`
	BitrateNew string `envconfig:"BITRATE_NEW"`
	NodeID     string `envconfig:"NODEID"`
	NodeIDNew  string `envconfig:"NODEID_NEW"`
	Sample     string `envconfig:"SAMPLE"`
	Sync       string `envconfig:"SYNC"`
	Drate      string `envconfig:"DRATE"`
	Filter     string `envconfig:"FILTER"`
	CSV        string `envconfig:"CSV"`
	Tempc      string `envconfig:"TEMPC"`
	Noscale    string `envconfig:"NOSCALE"`
	Savecfg    string `envconfig:"SAVECFG"`
}

// Store reads and writes one configuration file.
type Store struct {
	path string
}

// NewStore creates a Store for the given file path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultName
	}
	return &Store{path: path}
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}

// Write truncates the file and writes every pair in order, one KEY=VALUE
// per line with no escaping.
func (s *Store) Write(pairs []Pair) error {
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%s=%s\n", p.Key, p.Value)
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Read returns the stored pairs in file order, splitting each line on the
// first '='. Lines without '=' are skipped.
func (s *Store) Read() ([]Pair, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, s.path)
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var pairs []Pair
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

// Session binds the file into the process environment and returns the typed
// record. The environment bind means child processes inherit every key,
// including ones the dispatcher does not place on the command line.
// A missing file aborts before any child process can be started.
func (s *Store) Session() (*Session, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (run 'canlog setup' first)", ErrNotExist, s.path)
		}
		return nil, fmt.Errorf("checking %s: %w", s.path, err)
	}

	// Overload rather than Load so a rewritten file wins over values a
	// previous run left in this process environment.
	if err := godotenv.Overload(s.path); err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}

	var sess Session
	if err := envconfig.Process("", &sess); err != nil {
		return nil, fmt.Errorf("binding configuration: %w", err)
	}
	return &sess, nil
}
