// Package session holds the client-side synchronization core: the session
// list, the active conversation, the per-session document set, and upload
// state. It keeps an optimistic local view that is reconciled against the
// backend's responses, and knows nothing about the terminal UI.
package session

import "github.com/docfusion/docfusion-tui/client"

// BootstrapName is the session created for a user who has none.
const BootstrapName = "Session 1"

// Store owns the session list and the active-session pointer. At most one
// session is active; none when the list is empty.
type Store struct {
	sessions     []client.Session
	active       string
	bootstrapped bool
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Sessions() []client.Session {
	return s.sessions
}

func (s *Store) Active() string {
	return s.active
}

// IsActive reports whether name is the currently active session. Results of
// in-flight fetches are tagged with the session active at dispatch time and
// discarded when this no longer holds.
func (s *Store) IsActive(name string) bool {
	return s.active != "" && s.active == name
}

func (s *Store) SetActive(name string) {
	s.active = name
}

func (s *Store) ClearActive() {
	s.active = ""
}

// Find returns the session with the given name, if present.
func (s *Store) Find(name string) (client.Session, bool) {
	for _, sess := range s.sessions {
		if sess.Name == name {
			return sess, true
		}
	}
	return client.Session{}, false
}

// Apply replaces the session list with the server's view.
func (s *Store) Apply(list []client.Session) {
	s.sessions = list
}

// NeedsBootstrap reports whether an empty list result should trigger the
// one-time creation of BootstrapName. Only the first list result ever seen
// can trigger it: a failed bootstrap is not retried, and deleting every
// session later does not resurrect one.
func (s *Store) NeedsBootstrap(list []client.Session) bool {
	first := !s.bootstrapped
	s.bootstrapped = true
	return first && len(list) == 0
}

// RenameLocal patches the list entry and the active pointer in place. It is
// never rolled back; a later full list refresh corrects any drift.
func (s *Store) RenameLocal(oldName, newName string) {
	for i := range s.sessions {
		if s.sessions[i].Name == oldName {
			s.sessions[i].Name = newName
			break
		}
	}
	if s.active == oldName {
		s.active = newName
	}
}

// RemoveLocal drops name from the list and reports whether it was the
// active session, in which case the active pointer is cleared and the
// caller resets conversation and document state in the same update.
func (s *Store) RemoveLocal(name string) (wasActive bool) {
	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.Name != name {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept
	if s.active == name {
		s.active = ""
		return true
	}
	return false
}
