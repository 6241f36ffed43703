package domain

// SelectionPhase names the stages a suggestion selection moves through.
type SelectionPhase int

const (
	// SelectionIdle means no selection is active.
	SelectionIdle SelectionPhase = iota

	// SelectionPending means a selection is in flight: a container is
	// being expanded or an address application has not yet returned.
	SelectionPending

	// SelectionSettled means the last selection completed. The UI shows
	// a persistent confirmation marker for the settled key.
	SelectionSettled
)

// String returns the string representation of the phase.
func (p SelectionPhase) String() string {
	switch p {
	case SelectionIdle:
		return "idle"
	case SelectionPending:
		return "pending"
	case SelectionSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// SelectionState is the tagged selection variant: Idle carries no key,
// Pending and Settled carry the key of the location they refer to.
// The zero value is Idle.
type SelectionState struct {
	phase SelectionPhase
	key   string
}

// Idle returns the idle selection state.
func Idle() SelectionState {
	return SelectionState{}
}

// Pending returns a pending selection for key.
func Pending(key string) SelectionState {
	return SelectionState{phase: SelectionPending, key: key}
}

// Settled returns a settled selection for key.
func Settled(key string) SelectionState {
	return SelectionState{phase: SelectionSettled, key: key}
}

// Phase returns the current phase.
func (s SelectionState) Phase() SelectionPhase {
	return s.phase
}

// Key returns the location key the selection refers to, or "" when
// idle.
func (s SelectionState) Key() string {
	if s.phase == SelectionIdle {
		return ""
	}
	return s.key
}

// PendingKey reports whether key is the in-flight selection.
func (s SelectionState) PendingKey(key string) bool {
	return s.phase == SelectionPending && s.key == key
}

// SettledKey reports whether key is the last completed selection.
func (s SelectionState) SettledKey(key string) bool {
	return s.phase == SelectionSettled && s.key == key
}
