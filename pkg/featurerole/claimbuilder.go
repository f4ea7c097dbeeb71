package featurerole

import (
	"context"
	"errors"
	"fmt"
)

// RoleSource lists the role grants held by a user. Sources back token
// issuance: every grant they yield becomes one or more role claim entries.
// Implementations must yield grants in a stable order so issued token
// payloads are reproducible.
type RoleSource interface {
	Grants(ctx context.Context, user User) ([]Grant, error)
}

// RoleSourceFunc adapts a plain function to the RoleSource interface.
type RoleSourceFunc func(ctx context.Context, user User) ([]Grant, error)

// Grants calls the function.
func (f RoleSourceFunc) Grants(ctx context.Context, user User) ([]Grant, error) {
	return f(ctx, user)
}

// ResolveRoleSources resolves configured role source values into RoleSource
// implementations, in order. Each value is first tried as a grant-listing
// function and, failing that, as a RoleSource implementation (typically a
// queryable assignment store). Anything else is a fatal configuration error:
// resolution stops and ErrInvalidRoleSource is returned, since silently
// skipping a misconfigured source would hide a deployment bug.
func ResolveRoleSources(sources ...any) ([]RoleSource, error) {
	resolved := make([]RoleSource, 0, len(sources))

	for i, source := range sources {
		switch s := source.(type) {
		case func(ctx context.Context, user User) ([]Grant, error):
			resolved = append(resolved, RoleSourceFunc(s))
		case RoleSource:
			resolved = append(resolved, s)
		default:
			return nil, errors.Join(ErrInvalidRoleSource,
				fmt.Errorf("source %d has type %T", i, source))
		}
	}

	return resolved, nil
}

// BuildRoleClaims walks the configured role sources for a user and produces
// the flat list of role claim entries to embed in a newly issued token.
//
// A grant without contexts yields the bare role string. Each context yields
// one "role:context" entry; an empty-string context also yields the bare
// role string. Output order is source order, then grant order, then context
// order, so identical inputs always produce identical token payloads.
//
// Source failures propagate; they are configuration or infrastructure
// problems, not access decisions.
func BuildRoleClaims(ctx context.Context, user User, sources []RoleSource) ([]string, error) {
	roleClaims := make([]string, 0)

	for _, source := range sources {
		grants, err := source.Grants(ctx, user)
		if err != nil {
			return nil, err
		}

		for _, grant := range grants {
			if len(grant.Contexts) == 0 {
				roleClaims = append(roleClaims, grant.Role)
				continue
			}
			for _, c := range grant.Contexts {
				if c == "" {
					roleClaims = append(roleClaims, grant.Role)
					continue
				}
				roleClaims = append(roleClaims, grant.Role+":"+c)
			}
		}
	}

	return roleClaims, nil
}
