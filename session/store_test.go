package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfusion/docfusion-tui/client"
)

func list(names ...string) []client.Session {
	out := make([]client.Session, 0, len(names))
	for i, n := range names {
		out = append(out, client.Session{ID: string(rune('a' + i)), Name: n})
	}
	return out
}

func TestStoreActivePointer(t *testing.T) {
	s := NewStore()
	assert.Equal(t, "", s.Active())
	assert.False(t, s.IsActive(""))

	s.Apply(list("alpha", "beta"))
	s.SetActive("alpha")
	assert.True(t, s.IsActive("alpha"))
	assert.False(t, s.IsActive("beta"))

	s.ClearActive()
	assert.False(t, s.IsActive("alpha"))
}

func TestStoreIsActiveRejectsEmptyTag(t *testing.T) {
	s := NewStore()
	// A result tagged with "" must never match, even before any session
	// has been activated.
	assert.False(t, s.IsActive(""))
}

func TestStoreNeedsBootstrapFiresOnce(t *testing.T) {
	s := NewStore()
	assert.True(t, s.NeedsBootstrap(nil))
	// A second empty result, e.g. after a failed bootstrap create, must
	// not trigger another create.
	assert.False(t, s.NeedsBootstrap(nil))
}

func TestStoreNeedsBootstrapOnlyOnFirstList(t *testing.T) {
	s := NewStore()
	assert.False(t, s.NeedsBootstrap(list("alpha")))
	// Deleting every session later must not resurrect one.
	assert.False(t, s.NeedsBootstrap(nil))
}

func TestStoreApplyReplacesWholesale(t *testing.T) {
	s := NewStore()
	s.Apply(list("alpha", "beta"))
	s.Apply(list("gamma"))
	assert.Len(t, s.Sessions(), 1)
	_, ok := s.Find("alpha")
	assert.False(t, ok)
	got, ok := s.Find("gamma")
	assert.True(t, ok)
	assert.Equal(t, "gamma", got.Name)
}

func TestStoreRenameLocalPatchesListAndPointer(t *testing.T) {
	s := NewStore()
	s.Apply(list("Session 1", "beta"))
	s.SetActive("Session 1")

	s.RenameLocal("Session 1", "Quarterly report")

	assert.Equal(t, "Quarterly report", s.Active())
	_, ok := s.Find("Session 1")
	assert.False(t, ok)
	_, ok = s.Find("Quarterly report")
	assert.True(t, ok)
	// The sibling is untouched.
	_, ok = s.Find("beta")
	assert.True(t, ok)
}

func TestStoreRenameLocalInactiveSession(t *testing.T) {
	s := NewStore()
	s.Apply(list("alpha", "beta"))
	s.SetActive("alpha")

	s.RenameLocal("beta", "gamma")
	assert.Equal(t, "alpha", s.Active())
}

func TestStoreRemoveLocalActive(t *testing.T) {
	s := NewStore()
	s.Apply(list("alpha", "beta"))
	s.SetActive("alpha")

	wasActive := s.RemoveLocal("alpha")
	assert.True(t, wasActive)
	assert.Equal(t, "", s.Active())
	assert.Len(t, s.Sessions(), 1)
}

func TestStoreRemoveLocalInactive(t *testing.T) {
	s := NewStore()
	s.Apply(list("alpha", "beta"))
	s.SetActive("alpha")

	wasActive := s.RemoveLocal("beta")
	assert.False(t, wasActive)
	assert.Equal(t, "alpha", s.Active())
	assert.Len(t, s.Sessions(), 1)
}
