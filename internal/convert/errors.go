// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "fmt"

// ImportError reports that the source could not be loaded into the scene:
// missing, unreadable, corrupt, or not in a supported format.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// ExportError reports that the scene could not be written to the destination.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
