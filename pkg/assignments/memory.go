package assignments

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/roleauth/roleauth/pkg/featurerole"
)

// Memory is an in-memory role assignment store. It is thread-safe and keeps
// defensive copies, so callers cannot mutate stored assignments after the
// fact. Intended for tests and for embedding applications without a
// relational store.
type Memory struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]featurerole.Assignment
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{byUser: make(map[uuid.UUID][]featurerole.Assignment)}
}

// Add appends an assignment for the user. Insertion order is preserved and
// determines grant order during token issuance.
func (m *Memory) Add(userID uuid.UUID, roleName string, contexts ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byUser[userID] = append(m.byUser[userID], featurerole.Assignment{
		Role:     roleName,
		Contexts: featurerole.ContextList(slices.Clone(contexts)),
	})
}

// Assignments returns the assignments matching the user and role name.
func (m *Memory) Assignments(_ context.Context, userID uuid.UUID, roleName string) ([]featurerole.Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []featurerole.Assignment
	for _, a := range m.byUser[userID] {
		if a.Role == roleName {
			result = append(result, featurerole.Assignment{
				Role:     a.Role,
				Contexts: slices.Clone(a.Contexts),
			})
		}
	}
	return result, nil
}

// Grants lists every assignment the user holds, in insertion order.
func (m *Memory) Grants(_ context.Context, user featurerole.User) ([]featurerole.Grant, error) {
	if user.IsAnonymous() {
		return nil, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	assignments := m.byUser[user.ID]
	result := make([]featurerole.Grant, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, featurerole.Grant{
			Role:     a.Role,
			Contexts: slices.Clone(a.Contexts),
		})
	}
	return result, nil
}

var (
	_ featurerole.AssignmentStore = (*Memory)(nil)
	_ featurerole.RoleSource      = (*Memory)(nil)
)
