// Package featurerole maps coarse-grained system roles issued by an identity
// provider onto fine-grained, application-local feature roles, and answers
// access questions about them.
//
// Two sources of role truth are supported and kept deliberately independent:
//
//   - Claims path: roles embedded in an already-decoded token payload, in the
//     form "role" or "role:context". These are translated through a static
//     RoleMapping into feature roles and matched against the requested
//     context.
//   - Store path: role assignments persisted in a relational store, queried
//     live through the AssignmentStore interface.
//
// A context scopes a grant to a single resource instance (commonly a tenant
// or account identifier). The special AllAccessContext value "*" grants a
// feature role for every context. A grant with no context at all is a global,
// unscoped grant and is distinct from the wildcard.
//
// The package also provides the inverse operation: BuildRoleClaims walks a
// configured list of role sources for a user and produces the flat list of
// "role" / "role:context" strings to embed in a freshly issued token.
//
// Key concepts:
//
//   - RoleMapping: system role name -> feature role names, static
//     configuration injected at every call site
//   - Claims: a decoded token payload with a tolerant "roles" accessor
//   - AssignmentStore: the persistence collaborator queried on the store path
//   - RoleSource: anything that can list (role, contexts) grants for a user
//
// Basic usage:
//
//	mapping := featurerole.RoleMapping{
//	    "enterprise_admin": {"coupon-management", "data_api_access"},
//	}
//
//	// Claims path.
//	if featurerole.HasAccessViaClaims(claims, mapping, "coupon-management", "acct-42") {
//	    // allowed
//	}
//
//	// Store path.
//	ok, err := featurerole.HasAccessViaStore(ctx, store, user, "coupon-management", "acct-42")
//
//	// Token issuance.
//	roles, err := featurerole.BuildRoleClaims(ctx, user, sources)
//
// All checks default to deny: a missing token, an unknown role, or an absent
// assignment is an ordinary "no access" answer, never an error. Only
// infrastructure failures (a failing store query, an unresolvable role
// source) surface as errors.
package featurerole
