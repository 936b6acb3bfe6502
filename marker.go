package pyprof

import (
	"fmt"
)

// Direction is the pass in which a kernel is launched.
type Direction string

// Direction constants.
const (
	DirectionForward  Direction = "fprop"
	DirectionBackward Direction = "bprop"
)

// Expected module and operator of a linear layer marker.
const (
	LinearMarkerModule   = "torch.nn.functional"
	LinearMarkerOperator = "linear"
)

// TraceMarker is one kernel record of a trace,
// together with the markers of the operator call that launched the kernel.
type TraceMarker struct {
	// Name is the (demangled) kernel name.
	Name string `json:"name"`
	// Dir is the pass of the kernel.
	Dir Direction `json:"dir"`
	// Sub is the index of the kernel within the operator call.
	Sub string `json:"sub,omitempty"`
	// ArgMarker holds the encoded argument markers of the operator call,
	// only the first one is decoded.
	ArgMarker []string `json:"argMarker"`
}

// Marker is the decoded argument marker of an operator call.
type Marker struct {
	// Mod is the module of the operator, e.g. "torch.nn.functional".
	Mod string `json:"mod"`
	// Op is the operator, e.g. "linear".
	Op string `json:"op"`
	// Args are the positional arguments of the call.
	Args []Argument `json:"args"`
}

// DecodeMarker decodes the first argument marker of the given TraceMarker with the given MarkerCodec,
// and checks that it is a call of torch.nn.functional.linear with 2 or 3 arguments.
//
// A nil codec means JSONMarkerCodec.
func DecodeMarker(tm TraceMarker, codec MarkerCodec) (m Marker, err error) {
	if codec == nil {
		codec = JSONMarkerCodec{}
	}

	if len(tm.ArgMarker) == 0 {
		return m, fmt.Errorf("%w: kernel %q has no argument marker", ErrMarkerFormat, tm.Name)
	}
	if err = codec.DecodeMarker([]byte(tm.ArgMarker[0]), &m); err != nil {
		return m, fmt.Errorf("%w: decode argument marker of kernel %q: %v", ErrMarkerFormat, tm.Name, err)
	}

	if m.Mod != LinearMarkerModule {
		return m, fmt.Errorf("%w: want module %q, got %q", ErrMarkerFormat, LinearMarkerModule, m.Mod)
	}
	if m.Op != LinearMarkerOperator {
		return m, fmt.Errorf("%w: want operator %q, got %q", ErrMarkerFormat, LinearMarkerOperator, m.Op)
	}
	if n := len(m.Args); n != 2 && n != 3 {
		return m, fmt.Errorf("%w: want 2 or 3 arguments, got %d", ErrMarkerFormat, n)
	}
	for i := range m.Args {
		if err = m.Args[i].validate(); err != nil {
			return m, fmt.Errorf("%w: argument %d: %v", ErrMarkerFormat, i, err)
		}
	}
	return m, nil
}
