// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMetadata reports a broken block structure: text on the start
	// tag line, an end tag without a start tag, or a block that is never closed.
	ErrMalformedMetadata = errors.New("malformed metadata")
	// ErrMissingColon reports a tag line with no colon after the keyword.
	ErrMissingColon = errors.New("missing colon after tag")
	// ErrOutOfOrderTag reports tag categories out of canonical order.
	ErrOutOfOrderTag = errors.New("tag out of order")
)

// Error describes a lexing failure in a named source.
type Error struct {
	Source string
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("there was a problem parsing the description of %s: %s: %s", e.Source, e.Kind, e.Detail)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}
