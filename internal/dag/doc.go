// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package dag holds the reference topology between executables discovered
// while compiling. The compiler uses it to reject cyclic reference sets and to
// order dependency plans so that every plan is built after the plans it links to.
package dag
