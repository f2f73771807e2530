// Package migration moves whole collections between stores as tar
// archives: the full store document plus a manifest identifying the
// export. The manifest is written last so its counts are final.
package migration

import (
	"archive/tar"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lemmakit/clu/internal/clu/store"
)

// Exporter writes a store into a tar archive.
type Exporter struct {
	store  *store.Store
	writer *tar.Writer
}

// NewExporter creates an exporter writing to w.
func NewExporter(s *store.Store, w io.Writer) *Exporter {
	return &Exporter{
		store:  s,
		writer: tar.NewWriter(w),
	}
}

// Export writes the document and manifest and closes the archive.
func (e *Exporter) Export() error {
	defer e.writer.Close()

	doc, err := e.store.MarshalDocument()
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := e.writeEntry(documentName, doc); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	manifest := Manifest{
		ID:      uuid.New().String(),
		Version: formatVersion,
		Created: time.Now(),
		Lemmas:  e.store.Len(),
		Source:  e.store.Path(),
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := e.writeEntry(manifestName, data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}

func (e *Exporter) writeEntry(name string, data []byte) error {
	hdr := &tar.Header{
		Name:    name,
		Mode:    0644,
		Size:    int64(len(data)),
		ModTime: time.Now(),
	}
	if err := e.writer.WriteHeader(hdr); err != nil {
		return err
	}
	_, err := e.writer.Write(data)
	return err
}
