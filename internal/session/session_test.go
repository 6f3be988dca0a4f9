package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artistry-gallery/artistry/internal/domain"
	"github.com/artistry-gallery/artistry/internal/store"
)

func newManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	m, err := NewManager(st)
	require.NoError(t, err)
	return m, st
}

func buyer() *domain.Account {
	return &domain.Account{ID: 5, Name: "Sam", Email: "sam@example.com", Role: domain.RoleBuyer}
}

func TestBeginRestoreEnd(t *testing.T) {
	m, st := newManager(t)
	dev := m.NewDeviceID()

	assert.Nil(t, m.Restore(dev))

	require.NoError(t, m.Begin(dev, buyer()))
	acct := m.Restore(dev)
	require.NotNil(t, acct)
	assert.Equal(t, int64(5), acct.ID)

	require.NoError(t, m.End(dev))
	assert.Nil(t, m.Restore(dev))

	// the persisted entry is gone too
	data, err := st.Get(store.BucketSession, dev)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestRestoreSurvivesRestart(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	m1, err := NewManager(st)
	require.NoError(t, err)
	dev := m1.NewDeviceID()
	require.NoError(t, m1.Begin(dev, buyer()))

	// a fresh manager over the same store sees the persisted session
	m2, err := NewManager(st)
	require.NoError(t, err)
	acct := m2.Restore(dev)
	require.NotNil(t, acct)
	assert.Equal(t, "sam@example.com", acct.Email)
}

func TestMalformedEntryTreatedAsAbsent(t *testing.T) {
	m, st := newManager(t)
	dev := "device-x"

	require.NoError(t, st.Put(store.BucketSession, dev, []byte("{not json")))
	assert.Nil(t, m.Restore(dev))

	// the corrupt entry is dropped, not left to fail again
	data, err := st.Get(store.BucketSession, dev)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestUnknownRoleTreatedAsAbsent(t *testing.T) {
	m, st := newManager(t)
	dev := "device-y"

	require.NoError(t, st.Put(store.BucketSession, dev, []byte(`{"id":9,"role":"superuser"}`)))
	assert.Nil(t, m.Restore(dev))
}

func TestDeviceIDsAreUnique(t *testing.T) {
	m, _ := newManager(t)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := m.NewDeviceID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
