package assignments

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roleauth/roleauth/pkg/featurerole"
)

const (
	queryByUserAndRole = `SELECT role_name, contexts FROM role_assignments WHERE user_id = $1 AND role_name = $2 ORDER BY id`
	queryByUser        = `SELECT role_name, contexts FROM role_assignments WHERE user_id = $1 ORDER BY id`
)

// Store reads role assignments from PostgreSQL. It is safe for concurrent
// use; all state lives in the connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a role assignment store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Assignments returns all persisted assignments matching the user and role
// name, in insertion order.
func (s *Store) Assignments(ctx context.Context, userID uuid.UUID, roleName string) ([]featurerole.Assignment, error) {
	rows, err := s.pool.Query(ctx, queryByUserAndRole, userID, roleName)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var result []featurerole.Assignment
	for rows.Next() {
		var role string
		var contextsJSON []byte
		if err := rows.Scan(&role, &contextsJSON); err != nil {
			return nil, errors.Join(ErrScanFailed, err)
		}

		var contexts featurerole.ContextList
		if err := json.Unmarshal(contextsJSON, &contexts); err != nil {
			return nil, errors.Join(ErrScanFailed, err)
		}

		result = append(result, featurerole.Assignment{Role: role, Contexts: contexts})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	return result, nil
}

// Grants lists every assignment the user holds, making the store usable as a
// role source for token issuance. Insertion order keeps issued payloads
// deterministic.
func (s *Store) Grants(ctx context.Context, user featurerole.User) ([]featurerole.Grant, error) {
	if user.IsAnonymous() {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx, queryByUser, user.ID)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var result []featurerole.Grant
	for rows.Next() {
		var role string
		var contextsJSON []byte
		if err := rows.Scan(&role, &contextsJSON); err != nil {
			return nil, errors.Join(ErrScanFailed, err)
		}

		var contexts featurerole.ContextList
		if err := json.Unmarshal(contextsJSON, &contexts); err != nil {
			return nil, errors.Join(ErrScanFailed, err)
		}

		result = append(result, featurerole.Grant{Role: role, Contexts: contexts})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	return result, nil
}

var (
	_ featurerole.AssignmentStore = (*Store)(nil)
	_ featurerole.RoleSource      = (*Store)(nil)
)
