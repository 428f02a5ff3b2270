// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package plan defines the compiled form of an executable: an ExecutionPlan
// of 1-based, contiguous ExecutionSteps, and the CompilationArtifact that
// bundles a primary plan with the plans of its dependencies.
//
// Step payloads live in ActionData, an insertion-ordered map whose keys form a
// closed vocabulary versioned by ActionDataVersion. Renaming a key breaks
// every consumer of serialized artifacts.
package plan
