// Package inmemory keeps rows in memory behind the storage.RowWriter contract.
package inmemory

import (
	"fmt"
	"sync"

	"github.com/and161185/cpufreq-monitor/internal/errs"
	"github.com/and161185/cpufreq-monitor/model"
	"github.com/and161185/cpufreq-monitor/storage"
)

// MemStorage keeps the header and every row in memory.
type MemStorage struct {
	path   string
	header []string
	rows   []model.Row
	closed bool
	mu     sync.RWMutex
}

var _ storage.RowWriter = (*MemStorage)(nil)

// Open adapts NewMemStorage to storage.OpenFunc.
func Open(path string, header []string) (storage.RowWriter, error) {
	return NewMemStorage(path, header), nil
}

func NewMemStorage(path string, header []string) *MemStorage {
	return &MemStorage{
		path:   path,
		header: append([]string(nil), header...),
	}
}

func (store *MemStorage) Write(row model.Row) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.closed {
		return errs.ErrWriterClosed
	}
	if n := len(storage.Fields(row)); n != len(store.header) {
		return fmt.Errorf("%w: %d fields, header has %d", errs.ErrColumnMismatch, n, len(store.header))
	}
	store.rows = append(store.rows, row)
	return nil
}

func (store *MemStorage) Path() string { return store.path }

func (store *MemStorage) Header() []string {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return append([]string(nil), store.header...)
}

func (store *MemStorage) GetAll() []model.Row {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]model.Row, len(store.rows))
	copy(result, store.rows)
	return result
}

func (store *MemStorage) Closed() bool {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return store.closed
}

func (store *MemStorage) Close() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.closed = true
	return nil
}
