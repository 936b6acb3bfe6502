package pyprof

import "errors"

// Errors returned by ParseLinear,
// the concrete error wraps one of them, use errors.Is to tell them apart.
var (
	// ErrMarkerFormat is returned when the marker is not a call of torch.nn.functional.linear,
	// or carries an unexpected number of arguments.
	ErrMarkerFormat = errors.New("invalid marker format")
	// ErrShapeMismatch is returned when the arguments break the shape or dtype algebra of a linear layer.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrUnknownKernel is returned when the kernel name matches no pattern of the kernel taxonomy.
	ErrUnknownKernel = errors.New("unknown kernel")
)
