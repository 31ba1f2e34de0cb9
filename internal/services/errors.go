package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both absent objectives and objectives owned by a
	// different user, so nothing leaks about other users' data.
	ErrNotFound = errors.New("objective not found")

	ErrUnauthenticated = errors.New("unauthenticated")

	ErrInvalidInput = errors.New("invalid input")
)

const (
	AIErrKindCompletion = "completion_failed"
	AIErrKindMapping    = "mapping_failed"
)

// AIAnalysisError is the single failure surfaced by the analyze flow. Kind
// distinguishes "upstream unreachable" from "upstream responded but the shape
// was wrong" for callers and logs; the HTTP boundary treats both the same.
type AIAnalysisError struct {
	Kind string
	Err  error
}

func (e *AIAnalysisError) Error() string {
	return fmt.Sprintf("AI Analysis Failed: %v", e.Err)
}

func (e *AIAnalysisError) Unwrap() error {
	return e.Err
}
