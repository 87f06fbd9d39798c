package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"lecturebot/internal/contextutil"
	"lecturebot/internal/vectorstore"
)

// Manager owns the set of named collections and the currently active one.
// All ingestion and retrieval operations are scoped to the active collection.
// Create/delete/ingest operations against the same normalized name are
// serialized through per-name locks; the active pointer is its own lock.
type Manager struct {
	store       vectorstore.VectorStore
	vectorSize  int
	defaultName string

	activeMu sync.RWMutex
	active   string

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewManager creates a collection manager, ensures the default collection
// exists and makes it active.
func NewManager(ctx context.Context, store vectorstore.VectorStore, defaultName string, vectorSize int) (*Manager, error) {
	normalized, err := NormalizeName(defaultName)
	if err != nil {
		return nil, fmt.Errorf("invalid default collection name: %w", err)
	}

	if err := store.EnsureCollection(ctx, normalized, vectorSize); err != nil {
		return nil, fmt.Errorf("failed to ensure default collection: %w", err)
	}

	return &Manager{
		store:       store,
		vectorSize:  vectorSize,
		defaultName: normalized,
		active:      normalized,
		locks:       make(map[string]*sync.Mutex),
	}, nil
}

// DefaultName returns the normalized name of the default collection.
func (m *Manager) DefaultName() string {
	return m.defaultName
}

// Active returns the name of the currently active collection. A default
// collection always exists post-bootstrap, so this never fails.
func (m *Manager) Active() string {
	m.activeMu.RLock()
	defer m.activeMu.RUnlock()
	return m.active
}

// GetOrCreate normalizes rawName, creates the backing collection if absent and
// makes it the active collection. Returns the normalized name.
func (m *Manager) GetOrCreate(ctx context.Context, rawName string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name, err := NormalizeName(rawName)
	if err != nil {
		return "", err
	}

	unlock := m.LockName(name)
	defer unlock()

	if err := m.store.EnsureCollection(ctx, name, m.vectorSize); err != nil {
		return "", fmt.Errorf("failed to ensure collection %q: %w", name, err)
	}

	m.activeMu.Lock()
	m.active = name
	m.activeMu.Unlock()

	logger.InfoContext(ctx, "collection selected", "collection", name)
	return name, nil
}

// List returns all collection names in store-defined order.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.ListCollections(ctx)
}

// Delete removes a collection and all its chunks. A collection that is already
// gone is reported as (false, nil) rather than an error; store connectivity
// failures are returned as errors. Deleting the active collection resets the
// active pointer to the default collection.
func (m *Manager) Delete(ctx context.Context, rawName string) (bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name, err := NormalizeName(rawName)
	if err != nil {
		return false, err
	}

	unlock := m.LockName(name)
	defer unlock()

	if err := m.store.DeleteCollection(ctx, name); err != nil {
		if errors.Is(err, vectorstore.ErrCollectionNotFound) {
			logger.InfoContext(ctx, "collection already absent", "collection", name)
			return false, nil
		}
		return false, fmt.Errorf("failed to delete collection %q: %w", name, err)
	}

	m.activeMu.Lock()
	if m.active == name {
		m.active = m.defaultName
	}
	m.activeMu.Unlock()

	// The default collection must survive deletion so the system always has a
	// target for subsequent operations.
	if name == m.defaultName {
		if err := m.store.EnsureCollection(ctx, m.defaultName, m.vectorSize); err != nil {
			return true, fmt.Errorf("failed to recreate default collection: %w", err)
		}
	}

	logger.InfoContext(ctx, "collection deleted", "collection", name)
	return true, nil
}

// LockName acquires the mutex serializing mutations of the given normalized
// collection name and returns the corresponding unlock function. Ingestion
// holds this lock for the duration of a document write so a concurrent delete
// cannot remove the collection mid-batch.
func (m *Manager) LockName(name string) func() {
	m.locksMu.Lock()
	lock, ok := m.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[name] = lock
	}
	m.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
