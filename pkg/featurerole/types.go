package featurerole

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// AllAccessContext is the wildcard context. A grant carrying it applies to
// every context the caller may ask about.
const AllAccessContext = "*"

// ContextList holds the contexts a grant applies to. Order is preserved and
// duplicates are allowed; membership checks treat it as a set.
//
// Persisted context values come in two shapes: a single string for grants
// scoped to one resource, or a list of strings for grants spanning several.
// ContextList accepts both when decoding JSON, so evaluation logic never has
// to inspect the stored shape.
type ContextList []string

// UnmarshalJSON accepts either a JSON string or a JSON array of strings.
func (l *ContextList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = ContextList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.Join(ErrInvalidContextValue, err)
	}
	*l = ContextList(many)
	return nil
}

// Contains reports whether the exact context is present.
func (l ContextList) Contains(context string) bool {
	for _, c := range l {
		if c == context {
			return true
		}
	}
	return false
}

// Allows reports whether the given context is granted, either by exact
// membership or by the wildcard.
func (l ContextList) Allows(context string) bool {
	return l.Contains(context) || l.Contains(AllAccessContext)
}

// Grant is a single (role, contexts) pair yielded by a RoleSource. An empty
// Contexts list means the role applies globally, without any context scoping.
type Grant struct {
	Role     string
	Contexts ContextList
}

// Assignment is a persisted role grant record for a user, as returned by an
// AssignmentStore.
type Assignment struct {
	Role     string
	Contexts ContextList
}

// User identifies the principal an access check or claim build runs for.
// The zero value is an anonymous user and is denied everything on the store
// path.
type User struct {
	ID        uuid.UUID
	Anonymous bool
}

// IsAnonymous reports whether the user is an unauthenticated principal.
func (u User) IsAnonymous() bool {
	return u.Anonymous || u.ID == uuid.Nil
}
