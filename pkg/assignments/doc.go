// Package assignments provides implementations of the featurerole
// persistence collaborators: a PostgreSQL-backed store for production and an
// in-memory store for tests and small deployments.
//
// Both stores implement featurerole.AssignmentStore for the store-path
// access check and featurerole.RoleSource for token issuance, so persisted
// role assignments can feed featurerole.BuildRoleClaims directly.
//
// The Store expects a role_assignments table:
//
//	CREATE TABLE role_assignments (
//	    id         BIGSERIAL PRIMARY KEY,
//	    user_id    UUID  NOT NULL,
//	    role_name  TEXT  NOT NULL,
//	    contexts   JSONB NOT NULL DEFAULT '[]'
//	);
//
// The contexts column holds either a JSON string (a grant scoped to one
// resource) or a JSON array of strings; featurerole.ContextList decodes both.
// Schema management belongs to the embedding application.
package assignments
