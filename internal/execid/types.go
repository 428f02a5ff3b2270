// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package execid

// ID is the structured representation of a fully-qualified executable id.
type ID struct {
	Path []string
}

// Namespace returns every segment but the last, dot-joined. A bare name has
// an empty namespace.
func (id *ID) Namespace() string {
	if id == nil || len(id.Path) < 2 {
		return ""
	}
	return join(id.Path[:len(id.Path)-1])
}

// Name returns the last segment.
func (id *ID) Name() string {
	if id == nil || len(id.Path) == 0 {
		return ""
	}
	return id.Path[len(id.Path)-1]
}
