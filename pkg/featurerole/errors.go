package featurerole

import "errors"

var (
	// ErrInvalidRoleSource is returned when a configured role source is
	// neither a RoleSource implementation nor a grant-listing function.
	ErrInvalidRoleSource = errors.New("featurerole: invalid role source")

	// ErrInvalidContextValue is returned when a persisted context value is
	// neither a single string nor a list of strings.
	ErrInvalidContextValue = errors.New("featurerole: context must be a string or a list of strings")

	// ErrFailedToReadMapping is returned when the role mapping file cannot be read.
	ErrFailedToReadMapping = errors.New("featurerole: failed to read role mapping file")

	// ErrFailedToParseMapping is returned when the role mapping cannot be parsed.
	ErrFailedToParseMapping = errors.New("featurerole: failed to parse role mapping")
)
