package display

// WindowBuildError wraps a windowing-library error raised while creating
// the native window.
type WindowBuildError struct {
	Err error
}

func (e *WindowBuildError) Error() string {
	return "display: build window: " + e.Err.Error()
}

func (e *WindowBuildError) Unwrap() error { return e.Err }

// ContextCreationError reports a failed GL context creation, carrying the
// windowing library's diagnostic string.
type ContextCreationError struct {
	Detail string
}

func (e *ContextCreationError) Error() string {
	if e.Detail == "" {
		return "display: create GL context failed"
	}
	return "display: create GL context: " + e.Detail
}
