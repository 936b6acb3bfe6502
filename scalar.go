package pyprof

import (
	"strconv"
	"strings"
)

const (
	_Ki = 1 << ((iota + 1) * 10)
	_Mi
	_Gi
	_Ti
	_Pi
)

const (
	_K = 1e3
	_M = 1e6
	_G = 1e9
	_T = 1e12
	_P = 1e15
)

type (
	// BytesScalar is the scalar for bytes.
	BytesScalar uint64

	// FLOPSScalar is the scalar for floating point operations.
	FLOPSScalar uint64

	// IntensityScalar is the scalar for arithmetic intensity,
	// which is the number of floating point operations per byte moved.
	IntensityScalar float64
)

// _GeneralBaseUnitMatrix is the base unit matrix for bytes and FLOPS.
var _GeneralBaseUnitMatrix = []struct {
	Base float64
	Unit string
}{
	{_Pi, "Pi"},
	{_P, "P"},
	{_Ti, "Ti"},
	{_T, "T"},
	{_Gi, "Gi"},
	{_G, "G"},
	{_Mi, "Mi"},
	{_M, "M"},
	{_Ki, "Ki"},
	{_K, "K"},
}

// _DecimalBaseUnitMatrix is the base unit matrix for rendering counts.
var _DecimalBaseUnitMatrix = []struct {
	Base float64
	Unit string
}{
	{_P, "P"},
	{_T, "T"},
	{_G, "G"},
	{_M, "M"},
	{_K, "K"},
}

func (s BytesScalar) String() string {
	if s == 0 {
		return "0 B"
	}
	b, u := float64(1), ""
	for i := range _GeneralBaseUnitMatrix {
		if float64(s) >= _GeneralBaseUnitMatrix[i].Base {
			b = _GeneralBaseUnitMatrix[i].Base
			u = _GeneralBaseUnitMatrix[i].Unit
			break
		}
	}
	f := strconv.FormatFloat(float64(s)/b, 'f', 2, 64)
	return strings.TrimSuffix(f, ".00") + " " + u + "B"
}

func (s FLOPSScalar) String() string {
	if s == 0 {
		return "0 FLOPS"
	}
	b, u := float64(1), ""
	for i := range _DecimalBaseUnitMatrix {
		if float64(s) >= _DecimalBaseUnitMatrix[i].Base {
			b = _DecimalBaseUnitMatrix[i].Base
			u = _DecimalBaseUnitMatrix[i].Unit
			break
		}
	}
	f := strconv.FormatFloat(float64(s)/b, 'f', 2, 64)
	return strings.TrimSuffix(f, ".00") + " " + u + "FLOPS"
}

func (s IntensityScalar) String() string {
	if s <= 0 {
		return "0 FLOPS/B"
	}
	return strconv.FormatFloat(float64(s), 'f', 2, 64) + " FLOPS/B"
}
