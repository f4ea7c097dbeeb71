package featurerole_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roleauth/roleauth/pkg/featurerole"
)

func testMapping() featurerole.RoleMapping {
	return featurerole.RoleMapping{
		"enterprise_admin":   {"coupon-management", "data_api_access"},
		"enterprise_learner": {},
		"coupon-manager":     {"coupon-management"},
	}
}

func TestFeatureRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		roles []string
		want  map[string]featurerole.ContextList
	}{
		{
			name:  "single role with context",
			roles: []string{"enterprise_admin:acct-42"},
			want: map[string]featurerole.ContextList{
				"coupon-management": {"acct-42"},
				"data_api_access":   {"acct-42"},
			},
		},
		{
			name:  "role without context contributes empty context",
			roles: []string{"coupon-manager"},
			want: map[string]featurerole.ContextList{
				"coupon-management": {""},
			},
		},
		{
			name:  "unmapped role is dropped silently",
			roles: []string{"unknown_role:acct-1", "coupon-manager:acct-2"},
			want: map[string]featurerole.ContextList{
				"coupon-management": {"acct-2"},
			},
		},
		{
			name:  "role mapped to no feature roles contributes nothing",
			roles: []string{"enterprise_learner:acct-1"},
			want:  map[string]featurerole.ContextList{},
		},
		{
			name:  "only first colon separates role and context",
			roles: []string{"coupon-manager:org:team:acct-7"},
			want: map[string]featurerole.ContextList{
				"coupon-management": {"org:team:acct-7"},
			},
		},
		{
			name:  "duplicates and order preserved",
			roles: []string{"coupon-manager:a", "coupon-manager:a", "enterprise_admin:b"},
			want: map[string]featurerole.ContextList{
				"coupon-management": {"a", "a", "b"},
				"data_api_access":   {"b"},
			},
		},
		{
			name:  "empty roles list",
			roles: nil,
			want:  map[string]featurerole.ContextList{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := featurerole.FeatureRoles(tt.roles, testMapping())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAccessViaClaims(t *testing.T) {
	t.Parallel()

	claims := featurerole.Claims{
		"sub":   "user-1",
		"roles": []string{"enterprise_admin:acct-42"},
	}

	tests := []struct {
		name          string
		claims        featurerole.Claims
		roleName      string
		accessContext string
		want          bool
	}{
		{
			name:          "matching context granted",
			claims:        claims,
			roleName:      "coupon-management",
			accessContext: "acct-42",
			want:          true,
		},
		{
			name:          "non-matching context denied",
			claims:        claims,
			roleName:      "coupon-management",
			accessContext: "acct-99",
			want:          false,
		},
		{
			name:          "no context requested granted by presence",
			claims:        claims,
			roleName:      "coupon-management",
			accessContext: "",
			want:          true,
		},
		{
			name:          "second mapped feature role granted",
			claims:        claims,
			roleName:      "data_api_access",
			accessContext: "acct-42",
			want:          true,
		},
		{
			name:          "feature role absent denied",
			claims:        claims,
			roleName:      "reporting",
			accessContext: "acct-42",
			want:          false,
		},
		{
			name:          "nil claims denied",
			claims:        nil,
			roleName:      "coupon-management",
			accessContext: "",
			want:          false,
		},
		{
			name:          "empty claims denied",
			claims:        featurerole.Claims{},
			roleName:      "coupon-management",
			accessContext: "",
			want:          false,
		},
		{
			name:          "claims without roles entry denied",
			claims:        featurerole.Claims{"sub": "user-1"},
			roleName:      "coupon-management",
			accessContext: "",
			want:          false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := featurerole.HasAccessViaClaims(tt.claims, testMapping(), tt.roleName, tt.accessContext)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAccessViaClaims_Wildcard(t *testing.T) {
	t.Parallel()

	claims := featurerole.Claims{"roles": []string{"coupon-manager:*"}}

	assert.True(t, featurerole.HasAccessViaClaims(claims, testMapping(), "coupon-management", "any-context-string"))
	assert.True(t, featurerole.HasAccessViaClaims(claims, testMapping(), "coupon-management", "another"))
	assert.True(t, featurerole.HasAccessViaClaims(claims, testMapping(), "coupon-management", ""))
}

func TestHasAccessViaClaims_GlobalGrantIsNotWildcard(t *testing.T) {
	t.Parallel()

	// A bare role grants unscoped access but no specific context.
	claims := featurerole.Claims{"roles": []string{"coupon-manager"}}

	assert.True(t, featurerole.HasAccessViaClaims(claims, testMapping(), "coupon-management", ""))
	assert.False(t, featurerole.HasAccessViaClaims(claims, testMapping(), "coupon-management", "acct-1"))
}

func TestClaims_Roles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims featurerole.Claims
		want   []string
	}{
		{
			name:   "string slice",
			claims: featurerole.Claims{"roles": []string{"a", "b:ctx"}},
			want:   []string{"a", "b:ctx"},
		},
		{
			name:   "generic json slice",
			claims: featurerole.Claims{"roles": []any{"a", "b:ctx"}},
			want:   []string{"a", "b:ctx"},
		},
		{
			name:   "non-string elements skipped",
			claims: featurerole.Claims{"roles": []any{"a", 42, "b"}},
			want:   []string{"a", "b"},
		},
		{
			name:   "missing roles entry",
			claims: featurerole.Claims{"sub": "user-1"},
			want:   nil,
		},
		{
			name:   "roles entry of wrong type",
			claims: featurerole.Claims{"roles": "not-a-list"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.claims.Roles()
			require.Equal(t, tt.want, got)
		})
	}
}
