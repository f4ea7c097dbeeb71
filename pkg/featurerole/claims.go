package featurerole

import "strings"

// claimsRolesKey is the token payload key holding the role claim entries.
const claimsRolesKey = "roles"

// Claims is a decoded token payload. Only the "roles" entry is consulted
// here; everything else in the payload passes through untouched.
type Claims map[string]any

// Roles returns the role claim entries from the payload. A missing or
// malformed roles entry yields nil. Both []string and the []any produced by
// generic JSON decoding are accepted; non-string elements are skipped.
func (c Claims) Roles() []string {
	switch v := c[claimsRolesKey].(type) {
	case []string:
		return v
	case []any:
		roles := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	}
	return nil
}

// FeatureRoles translates role claim entries into a map from feature role
// name to the contexts that role applies to, using the given mapping.
//
// Each entry is either "role" or "role:context". Only the first colon
// separates the two; context values may themselves contain colons and are
// kept intact. Entries whose role has no mapping are dropped silently.
// An entry without a context contributes an empty-string context, marking a
// global grant. Insertion order is preserved and duplicates are kept; use
// ContextList.Allows for matching.
func FeatureRoles(roles []string, mapping RoleMapping) map[string]ContextList {
	featureRoles := make(map[string]ContextList)

	for _, entry := range roles {
		roleName, context, _ := strings.Cut(entry, ":")
		for _, feature := range mapping[roleName] {
			featureRoles[feature] = append(featureRoles[feature], context)
		}
	}

	return featureRoles
}

// HasAccessViaClaims reports whether the decoded token grants the feature
// role, optionally narrowed to a context.
//
// An empty or nil payload denies immediately. If the feature role is absent
// after mapping, access is denied. With an empty accessContext the presence
// of the feature role alone grants access. Otherwise access is granted when
// the requested context, or the wildcard, is among the role's contexts.
func HasAccessViaClaims(claims Claims, mapping RoleMapping, roleName, accessContext string) bool {
	if len(claims) == 0 {
		return false
	}
	return HasAccessViaRoles(claims.Roles(), mapping, roleName, accessContext)
}

// HasAccessViaRoles is the claims-path check for callers that already hold
// the raw role claim entries, e.g. a typed claims struct.
func HasAccessViaRoles(roles []string, mapping RoleMapping, roleName, accessContext string) bool {
	featureRoles := FeatureRoles(roles, mapping)

	contexts, ok := featureRoles[roleName]
	if !ok {
		return false
	}
	if accessContext == "" {
		return true
	}
	return contexts.Allows(accessContext)
}
