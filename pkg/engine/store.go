package engine

// ScrollStore adapts the manager's push-based subscription into the
// pull-based external-store shape the overlay consumes: subscribe for
// change notification, then pull the current snapshot. Notifications
// fire only when the snapshot actually changed, so an overlay that
// re-renders per notification never re-renders redundantly.
type ScrollStore struct {
	manager *ScrollManager
}

// NewScrollStore wraps a manager. A nil manager yields a store that
// always serves the default snapshot, the contract for contexts where no
// scroll pipeline exists.
func NewScrollStore(manager *ScrollManager) *ScrollStore {
	return &ScrollStore{manager: manager}
}

// DefaultSnapshot is the deterministic state served before any scroll
// pipeline exists. First paint and first live frame must agree on it.
func DefaultSnapshot() ScrollState {
	return ScrollState{Direction: DirectionIdle}
}

// Snapshot returns the current state, or the default snapshot without a
// manager.
func (s *ScrollStore) Snapshot() ScrollState {
	if s.manager == nil {
		return DefaultSnapshot()
	}
	return s.manager.State()
}

// Subscribe registers a change notification. The callback fires only
// when a published snapshot differs from the previous one, never on the
// initial replay. Returns an unsubscribe function.
func (s *ScrollStore) Subscribe(onChange func()) func() {
	if s.manager == nil {
		return func() {}
	}

	first := true
	var last ScrollState
	return s.manager.Subscribe(func(state ScrollState) {
		if first {
			first = false
			last = state
			return
		}
		if state == last {
			return
		}
		last = state
		onChange()
	})
}
