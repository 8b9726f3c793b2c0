package quad

import "golang.org/x/xerrors"

var (
	ErrNoContext           = xerrors.New("quad: rendering context unavailable")
	ErrNoImage             = xerrors.New("quad: no source image")
	ErrOddCoordinates      = xerrors.New("quad: coordinate list has an odd number of components")
	ErrVertexCountMismatch = xerrors.New("quad: position and texture coordinate vertex counts differ")
	ErrTopology            = xerrors.New("quad: vertex count does not fit topology")
	ErrUnknownTopology     = xerrors.New("quad: unknown topology")
	ErrUnknownPreset       = xerrors.New("quad: unknown preset")
	ErrShaderCompile       = xerrors.New("quad: shader compilation failed")
	ErrProgramLink         = xerrors.New("quad: program link failed")
)

// ContextError reports a surface that failed to provide a context. It matches
// ErrNoContext and unwraps to the surface's own error.
type ContextError struct {
	Err error
}

func (e *ContextError) Error() string {
	return ErrNoContext.Error() + ": " + e.Err.Error()
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

func (e *ContextError) Is(target error) bool {
	return target == ErrNoContext
}
