package pyprof

import (
	"fmt"
	"strings"
)

// Types for TorchDType.
type (
	// TorchDType is the element type of a profiled torch tensor,
	// see https://pytorch.org/docs/stable/tensor_attributes.html#torch-dtype.
	TorchDType uint32

	// TorchDTypeTrait holds the trait of a TorchDType.
	TorchDTypeTrait struct {
		TypeSize uint64 // Size in bytes of one element.
	}
)

// TorchDType constants.
//
// Complex and quantized types are not recorded for linear layers.
const (
	TorchDTypeUint8    TorchDType = iota // uint8
	TorchDTypeInt8                       // int8
	TorchDTypeBool                       // bool
	TorchDTypeFloat16                    // float16
	TorchDTypeBFloat16                   // bfloat16
	TorchDTypeInt16                      // int16
	TorchDTypeFloat32                    // float32
	TorchDTypeInt32                      // int32
	TorchDTypeInt64                      // int64
	TorchDTypeFloat64                    // float64
	_TorchDTypeCount                     // Unknown
)

// _TorchDTypeTraits is a table of TorchDTypeTrait for TorchDType.
var _TorchDTypeTraits = map[TorchDType]TorchDTypeTrait{
	TorchDTypeUint8:    {TypeSize: 1},
	TorchDTypeInt8:     {TypeSize: 1},
	TorchDTypeBool:     {TypeSize: 1},
	TorchDTypeFloat16:  {TypeSize: 2},
	TorchDTypeBFloat16: {TypeSize: 2},
	TorchDTypeInt16:    {TypeSize: 2},
	TorchDTypeFloat32:  {TypeSize: 4},
	TorchDTypeInt32:    {TypeSize: 4},
	TorchDTypeInt64:    {TypeSize: 8},
	TorchDTypeFloat64:  {TypeSize: 8},
}

// _TorchDTypeAliases maps the dtype tokens written by the profiler to TorchDType,
// the legacy tensor type names (half, float, long, ...) included.
var _TorchDTypeAliases = map[string]TorchDType{
	"uint8":    TorchDTypeUint8,
	"byte":     TorchDTypeUint8,
	"int8":     TorchDTypeInt8,
	"char":     TorchDTypeInt8,
	"bool":     TorchDTypeBool,
	"float16":  TorchDTypeFloat16,
	"half":     TorchDTypeFloat16,
	"bfloat16": TorchDTypeBFloat16,
	"int16":    TorchDTypeInt16,
	"short":    TorchDTypeInt16,
	"float32":  TorchDTypeFloat32,
	"float":    TorchDTypeFloat32,
	"int32":    TorchDTypeInt32,
	"int":      TorchDTypeInt32,
	"int64":    TorchDTypeInt64,
	"long":     TorchDTypeInt64,
	"float64":  TorchDTypeFloat64,
	"double":   TorchDTypeFloat64,
}

// ParseTorchDType parses the TorchDType from the given token,
// both "float32" and "torch.float32" are accepted.
func ParseTorchDType(s string) (TorchDType, bool) {
	t, ok := _TorchDTypeAliases[strings.TrimPrefix(s, "torch.")]
	if !ok {
		return _TorchDTypeCount, false
	}
	return t, true
}

// Trait returns the TorchDTypeTrait of the TorchDType.
func (t TorchDType) Trait() (TorchDTypeTrait, bool) {
	tt, ok := _TorchDTypeTraits[t]
	return tt, ok
}

// Size returns the size in bytes of one element of the TorchDType.
//
// Size panics on an unknown type,
// a TorchDType is only ever produced by ParseTorchDType.
func (t TorchDType) Size() uint64 {
	tt, ok := t.Trait()
	if !ok {
		panic(fmt.Errorf("invalid type: %v", t))
	}
	return tt.TypeSize
}
