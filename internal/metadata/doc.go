// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package metadata lexes the documentation block at the top of a source file.
//
// A block opens with a line holding only `#!!`, closes with `#!!#`, and every
// line in between starts with the `#!` prefix:
//
//	#!!
//	#! @description: Prints a message.
//	#!               Second line of the description.
//	#! @input message: the text to print
//	#! @result SUCCESS: printed
//	#!!#
//
// The block is split into an insertion-ordered map from tag key to text.
// Tags must appear in the canonical category order description, prerequisites,
// input, output, result. Only the category is compared, so two `@input`
// entries may appear in any order relative to each other.
package metadata
