package featurerole

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// RoleMapping maps a system role name, as issued by the identity system, to
// the feature role names it implies locally. A system role may map to zero,
// one, or several feature roles; several system roles may map to the same
// feature role.
//
// The mapping is static configuration. It is passed explicitly into every
// function that needs it rather than read from package-level state, so tests
// and concurrent callers can use differing mappings freely.
type RoleMapping map[string][]string

// ParseMapping parses a YAML role mapping document:
//
//	enterprise_admin:
//	  - coupon-management
//	  - data_api_access
//	coupon-manager:
//	  - coupon-management
func ParseMapping(data []byte) (RoleMapping, error) {
	var mapping RoleMapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, errors.Join(ErrFailedToParseMapping, err)
	}
	return mapping, nil
}

// LoadMapping reads and parses a YAML role mapping file.
func LoadMapping(path string) (RoleMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadMapping, err)
	}
	return ParseMapping(data)
}
