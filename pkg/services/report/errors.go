package report

import "fmt"

// RenderError reports a chart artifact that could not be serialized to an
// image. The whole Generate call aborts and no document is produced.
type RenderError struct {
	Chart string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render chart %q: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// WriteError reports a failure creating output directories or writing the
// final document, carrying the attempted path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
