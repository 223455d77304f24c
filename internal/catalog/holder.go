package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Holder publishes the current immutable Store to concurrent readers.
//
// Reload builds a complete new Store before swapping, so a reader can never
// observe a half-updated catalog. The steady-state read path is a single
// atomic pointer load.
type Holder struct {
	current atomic.Pointer[Store]
}

func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Current returns the active Store snapshot.
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Swap atomically replaces the active Store.
func (h *Holder) Swap(s *Store) {
	h.current.Store(s)
}

// ReadSourcesDir reads the three catalog documents from a directory laid out
// as products.json, accessories.json and bom_rules.json.
func ReadSourcesDir(dir string) (Sources, error) {
	var src Sources
	var err error
	if src.Products, err = os.ReadFile(filepath.Join(dir, "products.json")); err != nil {
		return Sources{}, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	if src.Accessories, err = os.ReadFile(filepath.Join(dir, "accessories.json")); err != nil {
		return Sources{}, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	if src.BOMRules, err = os.ReadFile(filepath.Join(dir, "bom_rules.json")); err != nil {
		return Sources{}, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	return src, nil
}

// LoadDir is the startup path: read the directory and build the Store.
func LoadDir(dir string) (*Store, error) {
	src, err := ReadSourcesDir(dir)
	if err != nil {
		return nil, err
	}
	return Load(src)
}
