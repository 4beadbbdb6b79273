package toolchain

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// documentRegistry caches parsed documents by path. A document is reparsed when its content hash changes.
type documentRegistry struct {
	mu   sync.Mutex
	docs map[string]*document
}

func newDocumentRegistry() *documentRegistry {
	return &documentRegistry{docs: make(map[string]*document)}
}

// Documents returns the number of cached documents.
func (r *documentRegistry) Documents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

func (r *documentRegistry) acquire(ctx context.Context, path, text string) (*document, error) {
	hash := xxhash.Sum64String(text)

	r.mu.Lock()
	doc, ok := r.docs[path]
	r.mu.Unlock()
	if ok && doc.hash == hash {
		return doc, nil
	}

	doc, err := parseDocument(ctx, path, text)
	if err != nil {
		return nil, err
	}
	doc.hash = hash

	r.mu.Lock()
	r.docs[path] = doc
	r.mu.Unlock()
	return doc, nil
}
