package analyzer

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// AnalysisError represents a failure while analyzing one part of a workbook.
type AnalysisError struct {
	SheetName string
	Component string // "cells", "charts", "data"
	Err       error
}

func (e *AnalysisError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("analysis error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(sheetName, component string, err error) *AnalysisError {
	return &AnalysisError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
