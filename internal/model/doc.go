// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model is the in-memory representation of compilable workflow
// definitions. It is the input of the compiler and is produced by a source
// front end such as hclsource.
//
// # Core Concepts
//
//   - Executable: a compilable unit with a fully-qualified id, ordered inputs,
//     outputs and results. It is either an Operation or a Flow.
//
//   - Operation: a leaf executable carrying one Action, a script or a
//     reference to a native handler.
//
//   - Flow: an executable that orchestrates ordered Tasks. Each Task invokes
//     another executable by id, binds its arguments, optionally loops, and
//     routes each result of the invoked executable to the next task or to a
//     result of the flow.
//
//   - Value: the expression of a binding. It is a tagged variant holding
//     either a native cty.Value or an unevaluated hcl.Expression together with
//     its source text. Expressions are never evaluated here; only their
//     function and system-property dependencies are extracted.
//
// Executables are immutable once constructed. Constructors copy the slices
// they are given and accessors return copies, so a model can be shared by
// concurrent compilations.
package model
