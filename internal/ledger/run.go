package ledger

import "github.com/google/uuid"

// NewRunID mints a run identifier for tagging ledger entries, promoting
// google/uuid from an indirect dependency of the retrieved example set to a
// direct one.
func NewRunID() string {
	return uuid.NewString()
}
