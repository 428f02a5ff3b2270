// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_WithoutLoggerIsSilent(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	require.NotPanics(t, func() { logger.Info("dropped") })
}

func TestWith_AttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := With(WithLogger(context.Background(), base), "executable", "io.demo.flow")
	FromContext(ctx).Debug("Resolving references.")

	require.Contains(t, buf.String(), "executable=io.demo.flow")
	require.Contains(t, buf.String(), "Resolving references.")
}
