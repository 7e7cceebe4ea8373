package router

import (
	"fmt"
	"strings"
)

// segment is one slash-separated element of a route pattern.
type segment struct {
	literal string
	param   string
}

func (s segment) isParam() bool {
	return s.param != ""
}

// parsePattern splits pattern into segments. The pattern gets a leading slash
// when it has none; trailing slashes are significant.
func parsePattern(pattern string) ([]segment, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if strings.ContainsAny(pattern, "?#") {
		return nil, fmt.Errorf("%w: %q contains a query or fragment", ErrInvalidPattern, pattern)
	}

	parts := splitPath(normalizeLeadingSlash(pattern))
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{})

	for _, part := range parts {
		if !strings.HasPrefix(part, ":") {
			segments = append(segments, segment{literal: part})
			continue
		}

		name := part[1:]
		if !isParamName(name) {
			return nil, fmt.Errorf("%w: bad parameter name %q in %q", ErrInvalidPattern, name, pattern)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate parameter %q in %q", ErrInvalidPattern, name, pattern)
		}
		seen[name] = struct{}{}
		segments = append(segments, segment{param: name})
	}

	return segments, nil
}

// normalizeLeadingSlash collapses any run of leading slashes into exactly one.
func normalizeLeadingSlash(path string) string {
	return "/" + strings.TrimLeft(path, "/")
}

// splitPath splits a path that starts with a slash into its segments.
// "/" yields one empty segment and "/a/" yields ["a", ""].
func splitPath(path string) []string {
	return strings.Split(path[1:], "/")
}

// isParamName reports whether name is a valid parameter name ([A-Za-z0-9_]+).
func isParamName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isAlnum(c) && c != '_' {
			return false
		}
	}
	return true
}

// isParamValue reports whether value may be captured by a parameter
// ([A-Za-z0-9_-]+).
func isParamValue(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if !isAlnum(c) && c != '_' && c != '-' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
