package repository

// Owned is any record carrying its owning user id.
type Owned interface {
	Owner() string
}

// requireOwner enforces the three-way read-one/mutate outcome: a caller
// probing another user's existing record gets ErrForbidden, which stays
// distinct from ErrNotFound for an absent one.
func requireOwner(rec Owned, callerID string) error {
	if rec.Owner() != callerID {
		return ErrForbidden
	}
	return nil
}
