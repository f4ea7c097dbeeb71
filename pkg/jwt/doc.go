// Package jwt issues and verifies the HS256 tokens that carry role claims
// between services.
//
// A Service signs and verifies compact tokens. RoleClaims is the payload
// shape: the RFC 7519 registered claims plus a "roles" list whose entries
// are "role" or "role:context" strings as produced by
// featurerole.BuildRoleClaims.
//
// # Architecture
//
//   - Service — signs and verifies tokens; IssueForUser builds the role
//     claim list from configured role sources before signing.
//   - RoleClaims — typed payload with helpers delegating to the featurerole
//     access checks.
//   - middleware.go — HTTP middleware that verifies a token (from header or
//     cookie) and injects claims into the request context, plus
//     RequireFeatureRole for gating handlers on a feature role.
//   - context.go — context helpers for the token string and claims.
//
// # Usage
//
//	svc, err := jwt.NewFromString("super-secret")
//	if err != nil {
//	    // handle error
//	}
//
//	// Issue a token with the user's persisted roles embedded.
//	token, err := svc.IssueForUser(ctx, user, sources, jwt.RoleClaims{
//	    StandardClaims: jwt.StandardClaims{
//	        Subject:   user.ID.String(),
//	        ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
//	    },
//	})
//
//	// Verify and check access.
//	var claims jwt.RoleClaims
//	if err := svc.Parse(token, &claims); err != nil {
//	    // invalid or expired
//	}
//	if claims.HasFeatureRole(mapping, "coupon-management", "acct-42") {
//	    // allowed
//	}
//
// Sentinel errors such as ErrExpiredToken and ErrInvalidSignature compare
// with errors.Is. The implementation stays on the standard library's crypto
// primitives; signing keys are kept in memory only.
package jwt
