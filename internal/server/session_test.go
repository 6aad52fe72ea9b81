package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/brandmark/pkg/errors"
	"github.com/matzehuels/brandmark/pkg/studio"
)

func newTestManager(ttl time.Duration) (*Manager, *time.Time) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(func() *studio.Controller { return studio.New() }, ttl)
	m.now = func() time.Time { return now }
	return m, &now
}

func TestManagerCreateGet(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	a := m.Create()
	b := m.Create()
	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, m.Len())

	got, err := m.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = m.Get("nope")
	assert.True(t, errors.Is(err, errors.ErrCodeSessionNotFound))
}

func TestManagerDelete(t *testing.T) {
	m, _ := newTestManager(time.Hour)
	s := m.Create()

	require.NoError(t, m.Delete(s.ID))
	assert.Equal(t, 0, m.Len())
	assert.True(t, errors.Is(m.Delete(s.ID), errors.ErrCodeSessionNotFound))
}

func TestManagerExpiry(t *testing.T) {
	m, now := newTestManager(time.Minute)
	idle := m.Create()
	busy := m.Create()

	*now = now.Add(50 * time.Second)
	busy.Do(*now, func(*studio.Controller) {})

	*now = now.Add(20 * time.Second)
	_, err := m.Get(idle.ID)
	assert.True(t, errors.Is(err, errors.ErrCodeSessionNotFound), "idle session should expire")

	_, err = m.Get(busy.ID)
	assert.NoError(t, err, "touched session should survive")

	*now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, m.Cleanup())
	assert.Equal(t, 0, m.Len())
}

func TestManagerNoTTL(t *testing.T) {
	m, now := newTestManager(0)
	s := m.Create()

	*now = now.Add(24 * 365 * time.Hour)
	_, err := m.Get(s.ID)
	assert.NoError(t, err)
	assert.Zero(t, m.Cleanup())
}

func TestSessionsAreIndependent(t *testing.T) {
	m, now := newTestManager(time.Hour)
	a, b := m.Create(), m.Create()

	a.Do(*now, func(ctl *studio.Controller) {
		ctl.Dispatch(studio.SetText{Field: studio.MainText, Value: "Changed"})
	})
	b.Do(*now, func(ctl *studio.Controller) {
		assert.Equal(t, "Brand", ctl.Config().MainText)
	})
}
