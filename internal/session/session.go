// Package session tracks the authenticated account per device. A device holds
// at most one session; the current account is persisted synchronously to the
// local store so it survives restarts, matching the stored-login behaviour of
// the client build this service replaces.
package session

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/artistry-gallery/artistry/internal/domain"
	"github.com/artistry-gallery/artistry/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Manager owns the session bucket. All persisted writes happen inside the
// mutating call, before it returns.
type Manager struct {
	store *store.Store
	node  *snowflake.Node

	mu     sync.RWMutex
	active map[string]*domain.Account
}

func NewManager(st *store.Store) (*Manager, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "snowflake node")
	}
	return &Manager{
		store:  st,
		node:   node,
		active: make(map[string]*domain.Account),
	}, nil
}

// NewDeviceID mints an identifier for a device that has none yet.
func (m *Manager) NewDeviceID() string {
	return m.node.Generate().String()
}

// Restore returns the session account for the device, loading it from the
// store on first sight. A malformed persisted value is treated as no session
// and the corrupt entry is dropped.
func (m *Manager) Restore(deviceID string) *domain.Account {
	m.mu.RLock()
	if acct, ok := m.active[deviceID]; ok {
		m.mu.RUnlock()
		return acct
	}
	m.mu.RUnlock()

	data, err := m.store.Get(store.BucketSession, deviceID)
	if err != nil || data == nil {
		return nil
	}
	var acct domain.Account
	if err := json.Unmarshal(data, &acct); err != nil || !acct.Role.Valid() {
		zap.S().Warnf("discarding malformed session entry for device %s", deviceID)
		_ = m.store.Delete(store.BucketSession, deviceID)
		return nil
	}

	m.mu.Lock()
	m.active[deviceID] = &acct
	m.mu.Unlock()
	return &acct
}

// Begin installs the account as the device's session and persists it before
// returning.
func (m *Manager) Begin(deviceID string, acct *domain.Account) error {
	data, err := json.Marshal(acct)
	if err != nil {
		return errors.Wrap(err, "serialize session")
	}
	if err := m.store.Put(store.BucketSession, deviceID, data); err != nil {
		return errors.Wrap(err, "persist session")
	}
	m.mu.Lock()
	m.active[deviceID] = acct
	m.mu.Unlock()
	return nil
}

// End clears the device's session from memory and from the store. Ending an
// absent session is a no-op.
func (m *Manager) End(deviceID string) error {
	m.mu.Lock()
	delete(m.active, deviceID)
	m.mu.Unlock()
	return m.store.Delete(store.BucketSession, deviceID)
}
