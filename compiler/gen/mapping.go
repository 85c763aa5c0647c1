package gen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Separator is the token between the GraphQL name and the Go type of a
// type mapping entry.
type Separator string

// Accepted separators. Either may be used, but all entries of one block
// must agree with the first entry.
const (
	SkinnyArrow Separator = "->"
	FatArrow    Separator = "=>"
)

var graphqlName = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// ParseTypeMappings parses one block of "GraphQLName -> GoType" entries.
//
// The separator of the first entry, "->" or "=>", fixes the separator of the
// whole block and entries using the other one are rejected. A GraphQL name
// may appear only once.
func ParseTypeMappings(entries []string) (map[string]HostType, error) {
	types := make(map[string]HostType, len(entries))
	var sep Separator
	for i, entry := range entries {
		s, gql, goType, err := splitMapping(entry)
		if err != nil {
			return nil, err
		}
		switch {
		case sep == "":
			sep = s
		case s != sep:
			return nil, NewConfigError("Types", entry, fmt.Sprintf("entry %d uses %q but the block started with %q; use one separator consistently", i, s, sep))
		}
		if !graphqlName.MatchString(gql) {
			return nil, NewConfigError("Types", entry, fmt.Sprintf("%q is not a valid GraphQL name", gql))
		}
		if _, ok := types[gql]; ok {
			return nil, NewConfigError("Types", entry, fmt.Sprintf("duplicate mapping for %q", gql))
		}
		h, err := ParseHostType(goType)
		if err != nil {
			msg := err.Error()
			var ce *ConfigError
			if errors.As(err, &ce) {
				msg = ce.Message
			}
			return nil, NewConfigError("Types", entry, msg)
		}
		types[gql] = h
	}
	return types, nil
}

// splitMapping splits an entry at its separator.
func splitMapping(entry string) (Separator, string, string, error) {
	skinny := strings.Index(entry, string(SkinnyArrow))
	fat := strings.Index(entry, string(FatArrow))
	var (
		sep Separator
		idx int
	)
	switch {
	case skinny < 0 && fat < 0:
		return "", "", "", NewConfigError("Types", entry, `expected "GraphQLName -> GoType" or "GraphQLName => GoType"`)
	case fat < 0 || (skinny >= 0 && skinny < fat):
		sep, idx = SkinnyArrow, skinny
	default:
		sep, idx = FatArrow, fat
	}
	gql := strings.TrimSpace(entry[:idx])
	goType := strings.TrimSpace(entry[idx+len(sep):])
	if gql == "" || goType == "" {
		return "", "", "", NewConfigError("Types", entry, "missing GraphQL name or Go type")
	}
	return sep, gql, goType, nil
}
