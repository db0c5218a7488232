// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides lightweight operation logging and
// timing for the classification components. The engine itself stays
// side-effect free; observers are attached at composition time.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

// Level controls how much an observer emits.
type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// Observer logs structured operation records for all components.
type Observer struct {
	level  Level
	writer io.Writer
}

// NewObserver creates an observer; records go to writer as JSON lines
// when the level is LevelDebug.
func NewObserver(level Level, writer io.Writer) *Observer {
	return &Observer{level: level, writer: writer}
}

// OperationData describes a single component operation.
type OperationData struct {
	Component   string         `json:"component"`
	Operation   string         `json:"operation"`
	Target      string         `json:"target,omitempty"`
	DurationMs  int64          `json:"duration_ms,omitempty"`
	Success     bool           `json:"success"`
	Error       string         `json:"error,omitempty"`
	TextLength  int            `json:"text_length,omitempty"`
	EntityCount int            `json:"entity_count,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// StartTiming returns a completion function that logs the operation
// with its elapsed duration.
func (o *Observer) StartTiming(component, operation, target string) func(success bool, metadata map[string]any) {
	start := time.Now()
	return func(success bool, metadata map[string]any) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			Target:     target,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation emits one operation record, honoring the level.
func (o *Observer) LogOperation(data OperationData) {
	if o == nil || o.level < LevelDebug || o.writer == nil {
		return
	}
	json.NewEncoder(o.writer).Encode(data)
}
