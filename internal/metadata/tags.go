// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package metadata

import "strings"

// Tag is one keyword of the closed tag vocabulary.
type Tag string

const (
	TagDescription   Tag = "@description"
	TagPrerequisites Tag = "@prerequisites"
	TagInput         Tag = "@input"
	TagOutput        Tag = "@output"
	TagResult        Tag = "@result"
)

// Tags lists the vocabulary in canonical order.
var Tags = []Tag{TagDescription, TagPrerequisites, TagInput, TagOutput, TagResult}

const (
	blockStartTag = "#!!"
	blockEndTag   = "#!!#"
	linePrefix    = "#!"
	// contentIndex skips the prefix and the separating space: "#! text".
	contentIndex = 3
	colon        = ":"
)

// single reports whether the tag is keyed by the keyword alone, without a
// name before the colon.
func (t Tag) single() bool {
	return t == TagDescription || t == TagPrerequisites
}

// position returns the index of the tag in the canonical order, or -1.
func (t Tag) position() int {
	for i, tag := range Tags {
		if tag == t {
			return i
		}
	}
	return -1
}

// containedTag returns the first vocabulary tag contained in s.
func containedTag(s string) (Tag, bool) {
	for _, tag := range Tags {
		if strings.Contains(s, string(tag)) {
			return tag, true
		}
	}
	return "", false
}
