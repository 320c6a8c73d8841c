package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/ariefcatur/go-store-api.git/internal/store"
)

// FileProvider persists the whole document as one pretty-printed JSON
// file. Save writes a temp file in the same directory and renames it over
// the target, so a reader never observes a half-written document.
type FileProvider struct {
	path string
}

func NewFile(path string) *FileProvider { return &FileProvider{path: path} }

// Load reads the document. Any failure (missing file, bad JSON) yields an
// empty-but-valid document instead of an error; the store has to be able
// to start from nothing.
func (f *FileProvider) Load() store.Document {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: read %s: %v", f.path, err)
		}
		return store.EmptyDocument()
	}
	var doc store.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		log.Printf("storage: parse %s: %v", f.path, err)
		return store.EmptyDocument()
	}
	return doc
}

func (f *FileProvider) Save(doc store.Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
