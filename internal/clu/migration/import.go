package migration

import (
	"archive/tar"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/lemmakit/clu/internal/clu/store"
)

// Importer merges an archive into a store through the store's normal
// import path, so existing ids are never overwritten and the counter
// advances past imported ids.
type Importer struct {
	store  *store.Store
	reader *tar.Reader
}

// NewImporter creates an importer reading from r.
func NewImporter(s *store.Store, r io.Reader) *Importer {
	return &Importer{
		store:  s,
		reader: tar.NewReader(r),
	}
}

// Import reads the archive, verifies its manifest, and merges the
// document into the store.
func (i *Importer) Import() (*Manifest, error) {
	var manifest *Manifest
	var doc []byte

	for {
		hdr, err := i.reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading archive: %w", err)
		}

		switch hdr.Name {
		case manifestName:
			data, err := io.ReadAll(i.reader)
			if err != nil {
				return nil, fmt.Errorf("reading manifest: %w", err)
			}
			manifest = &Manifest{}
			if err := json.Unmarshal(data, manifest); err != nil {
				return nil, fmt.Errorf("decoding manifest: %w", err)
			}
		case documentName:
			doc, err = io.ReadAll(i.reader)
			if err != nil {
				return nil, fmt.Errorf("reading document: %w", err)
			}
		}
	}

	if manifest == nil {
		return nil, fmt.Errorf("archive has no %s", manifestName)
	}
	if manifest.Version != formatVersion {
		return nil, fmt.Errorf("unsupported archive version %q", manifest.Version)
	}
	if doc == nil {
		return nil, fmt.Errorf("archive has no %s", documentName)
	}

	if err := i.store.ImportDocument(doc); err != nil {
		return nil, fmt.Errorf("merging archive: %w", err)
	}
	return manifest, nil
}
