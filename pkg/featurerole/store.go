package featurerole

import (
	"context"

	"github.com/google/uuid"
)

// AssignmentStore is the persistence collaborator for the store-path access
// check. Implementations return every persisted assignment matching the user
// and role name pair; ordering does not affect the access decision.
type AssignmentStore interface {
	Assignments(ctx context.Context, userID uuid.UUID, roleName string) ([]Assignment, error)
}

// HasAccessViaStore reports whether a persisted role assignment grants the
// user the feature role, optionally narrowed to a context.
//
// Anonymous users are denied without querying. No matching assignment means
// denied. With an empty accessContext any matching assignment grants access.
// Otherwise the contexts of all matching assignments are unioned and access
// is granted when the requested context, or the wildcard, is in that union.
//
// A store failure is returned as an error; a plain "no access" answer never
// is.
func HasAccessViaStore(ctx context.Context, store AssignmentStore, user User, roleName, accessContext string) (bool, error) {
	if user.IsAnonymous() {
		return false, nil
	}

	assignments, err := store.Assignments(ctx, user.ID, roleName)
	if err != nil {
		return false, err
	}
	if len(assignments) == 0 {
		return false, nil
	}
	if accessContext == "" {
		return true, nil
	}

	assigned := make(map[string]struct{})
	for _, assignment := range assignments {
		for _, c := range assignment.Contexts {
			assigned[c] = struct{}{}
		}
	}

	if _, ok := assigned[accessContext]; ok {
		return true, nil
	}
	_, ok := assigned[AllAccessContext]
	return ok, nil
}
