// Copyright (c) 2024 The robdd Authors
//
// MIT License

//go:build debug

package robdd

import (
	"log/slog"
	"os"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
