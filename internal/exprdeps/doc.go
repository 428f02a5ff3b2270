// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package exprdeps inspects HCL binding expressions statically and reports
// what they depend on: the functions they call, the system properties they
// read through get_sp, and the variables they reference. Nothing is evaluated
// against run-time data.
package exprdeps
