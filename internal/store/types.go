package store

import "time"

// Index is the persisted content of index.json.
type Index struct {
	Runs []*Run `json:"runs,omitempty"`
}

// Run records one dispatch of the vendor logger.
type Run struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Model     string    `json:"model"`
	NodeIDs   []string  `json:"node_ids"`
	Commands  []string  `json:"commands"`
	ExitCodes []int     `json:"exit_codes"`
	DryRun    bool      `json:"dry_run,omitempty"`
}
