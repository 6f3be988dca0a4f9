package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(BucketSession, "dev-1")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Put(BucketSession, "dev-1", []byte(`{"id":1}`)))
	v, err = s.Get(BucketSession, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), v)

	require.NoError(t, s.Delete(BucketSession, "dev-1"))
	v, err = s.Get(BucketSession, "dev-1")
	require.NoError(t, err)
	assert.Nil(t, v)

	// deleting an absent key is a no-op
	require.NoError(t, s.Delete(BucketCart, "nope"))
}

func TestBucketsAreIndependent(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(BucketSession, "dev-1", []byte("a")))
	require.NoError(t, s.Put(BucketCart, "dev-1", []byte("b")))

	v, _ := s.Get(BucketSession, "dev-1")
	assert.Equal(t, []byte("a"), v)
	v, _ = s.Get(BucketCart, "dev-1")
	assert.Equal(t, []byte("b"), v)
}
