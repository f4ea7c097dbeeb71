package jwt

import (
	"time"

	"github.com/roleauth/roleauth/pkg/featurerole"
)

// StandardClaims holds the registered claims from RFC 7519 Section 4.1.
// Temporal claims are Unix timestamps; zero values are treated as unset.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid checks the temporal claims against the current time.
func (c StandardClaims) Valid() error {
	now := time.Now().Unix()

	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrInvalidToken
	}
	return nil
}

// RoleClaims is the token payload this library issues: the registered claims
// plus the roles list, each entry of the form "role" or "role:context".
type RoleClaims struct {
	StandardClaims
	Roles []string `json:"roles,omitempty"`
}

// HasFeatureRole reports whether the token's roles grant the feature role
// for the given context, after translation through the mapping. An empty
// accessContext checks for unscoped presence of the feature role.
func (c RoleClaims) HasFeatureRole(mapping featurerole.RoleMapping, roleName, accessContext string) bool {
	return featurerole.HasAccessViaRoles(c.Roles, mapping, roleName, accessContext)
}

// FeatureRoles returns the feature role to contexts mapping carried by the
// token's roles, after translation through the mapping.
func (c RoleClaims) FeatureRoles(mapping featurerole.RoleMapping) map[string]featurerole.ContextList {
	return featurerole.FeatureRoles(c.Roles, mapping)
}
