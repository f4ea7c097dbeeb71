package featurerole_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roleauth/roleauth/pkg/featurerole"
)

// listSource yields a fixed list of grants for any user.
type listSource struct {
	grants []featurerole.Grant
	err    error
}

func (s *listSource) Grants(_ context.Context, _ featurerole.User) ([]featurerole.Grant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.grants, nil
}

func TestBuildRoleClaims(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	user := featurerole.User{ID: uuid.New()}

	tests := []struct {
		name    string
		sources []featurerole.RoleSource
		want    []string
	}{
		{
			name: "multiple contexts expand to one entry each",
			sources: []featurerole.RoleSource{
				&listSource{grants: []featurerole.Grant{
					{Role: "coupon-manager", Contexts: featurerole.ContextList{"acct-1", "acct-2"}},
				}},
			},
			want: []string{"coupon-manager:acct-1", "coupon-manager:acct-2"},
		},
		{
			name: "grant without contexts yields bare role",
			sources: []featurerole.RoleSource{
				&listSource{grants: []featurerole.Grant{
					{Role: "enterprise_admin"},
				}},
			},
			want: []string{"enterprise_admin"},
		},
		{
			name: "empty-string context yields bare role",
			sources: []featurerole.RoleSource{
				&listSource{grants: []featurerole.Grant{
					{Role: "enterprise_admin", Contexts: featurerole.ContextList{""}},
				}},
			},
			want: []string{"enterprise_admin"},
		},
		{
			name: "order follows source then grant then context",
			sources: []featurerole.RoleSource{
				&listSource{grants: []featurerole.Grant{
					{Role: "a", Contexts: featurerole.ContextList{"1", "2"}},
					{Role: "b"},
				}},
				&listSource{grants: []featurerole.Grant{
					{Role: "c", Contexts: featurerole.ContextList{"3"}},
				}},
			},
			want: []string{"a:1", "a:2", "b", "c:3"},
		},
		{
			name:    "no sources yields empty list",
			sources: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := featurerole.BuildRoleClaims(ctx, user, tt.sources)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRoleClaims_SourceErrorPropagates(t *testing.T) {
	t.Parallel()

	srcErr := errors.New("source unavailable")
	sources := []featurerole.RoleSource{
		&listSource{grants: []featurerole.Grant{{Role: "a"}}},
		&listSource{err: srcErr},
	}

	got, err := featurerole.BuildRoleClaims(context.Background(), featurerole.User{ID: uuid.New()}, sources)
	require.ErrorIs(t, err, srcErr)
	assert.Nil(t, got)
}

func TestResolveRoleSources(t *testing.T) {
	t.Parallel()

	grantFunc := func(_ context.Context, _ featurerole.User) ([]featurerole.Grant, error) {
		return []featurerole.Grant{{Role: "from-func"}}, nil
	}
	entity := &listSource{grants: []featurerole.Grant{{Role: "from-entity"}}}

	resolved, err := featurerole.ResolveRoleSources(grantFunc, entity)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	claims, err := featurerole.BuildRoleClaims(context.Background(), featurerole.User{ID: uuid.New()}, resolved)
	require.NoError(t, err)
	assert.Equal(t, []string{"from-func", "from-entity"}, claims)
}

func TestResolveRoleSources_InvalidSource(t *testing.T) {
	t.Parallel()

	resolved, err := featurerole.ResolveRoleSources("not.a.source")
	require.ErrorIs(t, err, featurerole.ErrInvalidRoleSource)
	assert.Nil(t, resolved)
}

// Claims built for a user and fed back through extraction must reproduce the
// associations the sources advertised, modulo the configured mapping.
func TestBuildRoleClaims_RoundTrip(t *testing.T) {
	t.Parallel()

	user := featurerole.User{ID: uuid.New()}
	sources := []featurerole.RoleSource{
		&listSource{grants: []featurerole.Grant{
			{Role: "enterprise_admin", Contexts: featurerole.ContextList{"acct-1"}},
			{Role: "coupon-manager", Contexts: featurerole.ContextList{"acct-2", "acct-3"}},
		}},
	}

	roleClaims, err := featurerole.BuildRoleClaims(context.Background(), user, sources)
	require.NoError(t, err)
	require.Equal(t, []string{
		"enterprise_admin:acct-1",
		"coupon-manager:acct-2",
		"coupon-manager:acct-3",
	}, roleClaims)

	extracted := featurerole.FeatureRoles(roleClaims, testMapping())
	assert.Equal(t, map[string]featurerole.ContextList{
		"coupon-management": {"acct-1", "acct-2", "acct-3"},
		"data_api_access":   {"acct-1"},
	}, extracted)
}
