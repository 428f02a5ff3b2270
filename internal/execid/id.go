// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package execid

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// segmentRegex matches a single segment of an id, e.g. `print` or `base-ops`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidSegmentName checks for undesirable but technically valid names.
func isValidSegmentName(name string) bool {
	return strings.Trim(name, "-") != ""
}

// Parse creates a new ID by parsing its canonical string representation.
func Parse(raw string) (*ID, error) {
	if raw == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	id := &ID{}
	for _, segment := range strings.Split(raw, ".") {
		if segment == "" {
			return nil, fmt.Errorf("identifier %q contains an empty segment", raw)
		}
		if !segmentRegex.MatchString(segment) {
			return nil, fmt.Errorf("invalid identifier segment %q in %q", segment, raw)
		}
		if !isValidSegmentName(segment) {
			return nil, fmt.Errorf("invalid segment name %q in %q", segment, raw)
		}
		id.Path = append(id.Path, segment)
	}
	return id, nil
}

// Join builds the canonical id of an executable named name inside namespace.
// An empty namespace yields the bare name.
func Join(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// String serializes the ID into its canonical form.
func (id *ID) String() string {
	if id == nil {
		return ""
	}
	return join(id.Path)
}

// Equal reports whether both ids have the same segments.
func (id *ID) Equal(other *ID) bool {
	if id == nil || other == nil {
		return id == other
	}
	return slices.Equal(id.Path, other.Path)
}

func join(path []string) string {
	return strings.Join(path, ".")
}
