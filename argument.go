package pyprof

import (
	"fmt"
	"strings"

	"github.com/gpustack/pyprof-go/util/anyx"
)

// ArgumentKind is the variant of an Argument.
type ArgumentKind uint8

// ArgumentKind constants.
const (
	ArgumentKindScalar ArgumentKind = iota
	ArgumentKindTensor
	ArgumentKindNone
)

// Argument type tokens written by the profiler.
const (
	ArgumentTypeTensor = "tensor"
	ArgumentTypeNone   = "NoneType"
)

// Argument is one argument of a profiled call,
// which is one of a tensor, a scalar or None.
//
// A tensor carries Shape and DType,
// a scalar carries Type (e.g. "int", "float", "bool") and Value,
// None carries a nil Value.
type Argument struct {
	// Name is the keyword of the argument, empty for positional arguments.
	Name string `json:"name,omitempty"`
	// Type is the type token of the argument.
	Type string `json:"type"`
	// Shape is the shape of a tensor argument.
	Shape []uint64 `json:"shape,omitempty"`
	// DType is the dtype token of a tensor argument.
	DType string `json:"dtype,omitempty"`
	// Value is the value of a scalar argument.
	Value any `json:"value,omitempty"`
}

// Kind returns the ArgumentKind of the Argument.
func (a Argument) Kind() ArgumentKind {
	switch a.Type {
	case ArgumentTypeTensor:
		return ArgumentKindTensor
	case ArgumentTypeNone:
		return ArgumentKindNone
	default:
		return ArgumentKindScalar
	}
}

// IsTensor returns whether the Argument is a tensor.
func (a Argument) IsTensor() bool {
	return a.Kind() == ArgumentKindTensor
}

// TorchDType returns the parsed DType of a tensor Argument.
func (a Argument) TorchDType() (TorchDType, bool) {
	return ParseTorchDType(a.DType)
}

// validate checks the Argument against the schema of its variant.
func (a Argument) validate() error {
	switch a.Kind() {
	case ArgumentKindTensor:
		if a.Shape == nil {
			return fmt.Errorf("tensor argument %q has no shape", a.Name)
		}
		if _, ok := a.TorchDType(); !ok {
			return fmt.Errorf("tensor argument %q has unknown dtype %q", a.Name, a.DType)
		}
		if a.Value != nil {
			return fmt.Errorf("tensor argument %q carries a value", a.Name)
		}
	default:
		if a.Type == "" {
			return fmt.Errorf("argument %q has no type", a.Name)
		}
		if a.Shape != nil || a.DType != "" {
			return fmt.Errorf("%s argument %q carries a tensor shape or dtype", a.Type, a.Name)
		}
	}
	return nil
}

func (a Argument) String() string {
	switch a.Kind() {
	case ArgumentKindTensor:
		ds := make([]string, len(a.Shape))
		for i := range a.Shape {
			ds[i] = anyx.String(a.Shape[i])
		}
		return fmt.Sprintf("tensor(%s)[%s]", a.DType, strings.Join(ds, ","))
	case ArgumentKindNone:
		return "None"
	default:
		return a.Type + "(" + anyx.String(a.Value) + ")"
	}
}
