// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package compiler turns an executable and a pool of candidate dependencies
// into a CompilationArtifact.
//
// The pipeline resolves the direct references of the executable, validates
// it, walks every reachable dependency the same way, rejects cyclic reference
// sets, builds one ExecutionPlan per executable in dependency order and
// assembles the result. A compilation either returns a complete artifact or
// an error; no partial plan escapes.
package compiler
