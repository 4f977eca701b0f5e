package prefs

// Store holds the per-user target language selection.
// Implementations must be safe for concurrent use and must complete the
// durable write before Set/Clear return.
// Get never fails; an unset user is a normal state.
type Store interface {
	Get(userID int64) (string, bool)
	Set(userID int64, lang string) error
	Clear(userID int64) error
}
