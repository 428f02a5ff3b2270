// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package render turns compilation artifacts, executable descriptions and
// validation reports into documents and encodes them as JSON or YAML.
package render
