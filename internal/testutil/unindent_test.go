// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnindent(t *testing.T) {
	in := `
		flow "main" {
		  task "a" {}

		}`
	assert.Equal(t, "flow \"main\" {\n  task \"a\" {}\n\n}", Unindent(in))
	assert.Equal(t, "plain", Unindent("plain"))
}
