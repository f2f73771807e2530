package migration

import (
	"time"
)

// archive entry names
const (
	manifestName = "manifest.json"
	documentName = "lemmas.json"
)

// formatVersion is the archive layout version, independent of the store
// document version.
const formatVersion = "1"

// Manifest describes an archive: where it came from and what it holds.
type Manifest struct {
	ID      string    `json:"id"`
	Version string    `json:"version"`
	Created time.Time `json:"created"`
	Lemmas  int       `json:"lemmas"`
	Source  string    `json:"source"`
}
