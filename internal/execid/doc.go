// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package execid provides a structured representation for fully-qualified
executable identifiers.

The canonical format is a dot-separated sequence of segments where the last
segment is the executable name and everything before it is the namespace,
e.g. `io.cloudslang.base.print` has namespace `io.cloudslang.base` and name
`print`.

The compiler matches references by the canonical string only; this package
centralizes building and checking that string.
*/
package execid
