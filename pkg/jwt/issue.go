package jwt

import (
	"context"

	"github.com/roleauth/roleauth/pkg/featurerole"
)

// IssueForUser builds the user's role claim list from the configured role
// sources and signs a token carrying it. The base claims provide subject,
// issuer, and temporal fields; its Roles field is overwritten with the built
// list.
//
// Role source failures propagate unmodified: they indicate misconfiguration
// or an unavailable assignment store, and issuing a token with silently
// missing roles would mask that.
func (s *Service) IssueForUser(ctx context.Context, user featurerole.User, sources []featurerole.RoleSource, base RoleClaims) (string, error) {
	roles, err := featurerole.BuildRoleClaims(ctx, user, sources)
	if err != nil {
		return "", err
	}

	base.Roles = roles
	return s.Generate(base)
}
