package template

import "fmt"

// GenerationError represents a failure while building one sheet.
type GenerationError struct {
	Sheet string
	Step  string // "sheet", "cells", "styles", "layout", "format", "charts", "save"
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("template generation error (%s): %v", e.Step, e.Err)
	}
	return fmt.Sprintf("template generation error in sheet %q (%s): %v", e.Sheet, e.Step, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newGenerationError(sheet, step string, err error) *GenerationError {
	return &GenerationError{Sheet: sheet, Step: step, Err: err}
}
