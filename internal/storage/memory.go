package storage

import "github.com/ariefcatur/go-store-api.git/internal/store"

// Memory is an in-memory provider for tests. Load hands out a clone so a
// mutation that fails before Save cannot leak into the committed
// document, mirroring the read-from-disk behavior of FileProvider.
type Memory struct {
	Doc     store.Document
	SaveErr error // when set, Save fails with this error
	Saves   int
}

func NewMemory() *Memory { return &Memory{Doc: store.EmptyDocument()} }

func (m *Memory) Load() store.Document { return m.Doc.Clone() }

func (m *Memory) Save(doc store.Document) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Doc = doc.Clone()
	m.Saves++
	return nil
}
