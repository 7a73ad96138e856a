// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger holds the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once sync.Once
	log  *zap.Logger
)

// Get returns the shared logger, building it on first use. Output goes
// to stderr only: when serving MCP, stdout carries the stdio transport.
func Get() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}

		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		log = l
	})
	return log
}
