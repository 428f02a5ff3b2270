// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package metadata

import (
	"fmt"
	"strings"
)

// Parse extracts the metadata block of source and splits it into tags. name
// identifies the source in error messages. A source without a block yields
// empty metadata.
func Parse(name, source string) (*Metadata, error) {
	lines, err := extractBlock(name, source)
	if err != nil {
		return nil, err
	}

	md, err := splitTags(name, lines)
	if err != nil {
		return nil, err
	}

	if err := checkOrder(name, md); err != nil {
		return nil, err
	}
	return md, nil
}

// extractBlock returns the content of the first block with the line prefix
// removed. Lines inside the block without the prefix are skipped.
func extractBlock(name, source string) ([]string, error) {
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	var (
		content    []string
		startFound bool
		endFound   bool
		firstLine  string
	)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if strings.HasPrefix(line, blockEndTag) {
			endFound = true
			break
		}
		if strings.HasPrefix(line, blockStartTag) {
			startFound = true
			firstLine = line
			i++
			if i == len(lines) {
				break
			}
			line = strings.TrimSpace(lines[i])
			if strings.HasPrefix(line, blockEndTag) {
				endFound = true
				break
			}
		}

		if startFound && strings.HasPrefix(line, linePrefix) && len(line) >= contentIndex {
			content = append(content, line[contentIndex:])
		}
	}

	switch {
	case len(firstLine) > len(blockStartTag):
		return nil, &Error{Source: name, Kind: ErrMalformedMetadata, Detail: "description is not accepted on the same line as the starting tag"}
	case endFound && !startFound:
		return nil, &Error{Source: name, Kind: ErrMalformedMetadata, Detail: "starting tag missing in the description"}
	case !endFound && len(content) > 0:
		return nil, &Error{Source: name, Kind: ErrMalformedMetadata, Detail: "closing tag missing in the description"}
	}
	return content, nil
}

// splitTags groups block lines under the tag line that precedes them.
// Text before the first tag line belongs to no tag and is dropped.
func splitTags(name string, lines []string) (*Metadata, error) {
	md := New()

	var (
		key    string
		hasKey bool
		value  []string
	)

	for i, line := range lines {
		if tag, ok := containedTag(line); ok {
			at := strings.Index(line, string(tag))
			rel := strings.Index(line[at:], colon)
			if rel < 0 {
				return nil, &Error{
					Source: name,
					Kind:   ErrMissingColon,
					Detail: fmt.Sprintf("line %q does not contain a colon after tag %s", strings.TrimSpace(line), tag),
				}
			}
			sep := at + rel
			if tag.single() {
				key = string(tag)
			} else {
				key = strings.TrimSpace(line[:sep])
			}
			line = line[sep+len(colon):]
			hasKey = true
		}

		value = append(value, strings.TrimSpace(line))

		next := i + 1
		if next == len(lines) || lineHasTag(lines[next]) {
			if hasKey {
				md.set(key, strings.TrimSpace(strings.Join(value, "\n")))
			}
			value = value[:0]
		}
	}
	return md, nil
}

// checkOrder verifies that tag categories never go backwards.
func checkOrder(name string, md *Metadata) error {
	prevPos := -1
	prevKey := ""
	for _, key := range md.Keys() {
		tag, _ := containedTag(key)
		pos := tag.position()
		if prevPos > pos {
			return &Error{
				Source: name,
				Kind:   ErrOutOfOrderTag,
				Detail: fmt.Sprintf("%q must not follow %q; expected order is %s", key, prevKey, order()),
			}
		}
		prevPos, prevKey = pos, key
	}
	return nil
}

func lineHasTag(line string) bool {
	_, ok := containedTag(line)
	return ok
}

func entryName(key string, tag Tag) string {
	return strings.TrimSpace(strings.Replace(key, string(tag), "", 1))
}

func order() string {
	names := make([]string, len(Tags))
	for i, tag := range Tags {
		names[i] = string(tag)
	}
	return strings.Join(names, ", ")
}
