package seek

import (
	"io"

	"github.com/goccy/go-json"
)

// Snapshot is the state needed to rebuild a control; angles are derived
// from configuration and never saved.
type Snapshot struct {
	Max   int `json:"max"`
	Value int `json:"value"`
}

// Encode writes snap as JSON.
func (snap Snapshot) Encode(w io.Writer) error { return json.NewEncoder(w).Encode(snap) }

// DecodeSnapshot reads a snapshot written by Encode.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	err := json.NewDecoder(r).Decode(&snap)
	return snap, err
}
