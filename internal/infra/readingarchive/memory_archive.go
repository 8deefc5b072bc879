package readingarchive

import (
	"context"
	"errors"
	"sync"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

var errMissingID = errors.New("reading id is required")

// MemoryArchive is an in-memory reading archive used for tests/dev.
type MemoryArchive struct {
	mu       sync.RWMutex
	readings map[string]reading.Response
}

// NewMemoryArchive constructs an archive backed by memory.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{readings: make(map[string]reading.Response)}
}

// Save implements reading.Archive.
func (a *MemoryArchive) Save(_ context.Context, resp reading.Response) error {
	if resp.ID == "" {
		return errMissingID
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.readings[resp.ID] = resp
	return nil
}

// Get implements reading.Archive.
func (a *MemoryArchive) Get(_ context.Context, id string) (reading.Response, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	resp, ok := a.readings[id]
	return resp, ok, nil
}

var _ reading.Archive = (*MemoryArchive)(nil)
