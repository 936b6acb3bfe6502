package pyprof

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/gpustack/pyprof-go/util/json"
)

// MarkerCodec decodes an encoded argument marker into a Marker.
type MarkerCodec interface {
	DecodeMarker(data []byte, m *Marker) error
}

// JSONMarkerCodec decodes JSON argument markers,
// unknown fields are rejected.
type JSONMarkerCodec struct{}

func (JSONMarkerCodec) DecodeMarker(data []byte, m *Marker) error {
	return json.UnmarshalStrict(data, m)
}

// CBORMarkerCodec decodes CBOR argument markers,
// unknown fields and duplicated map keys are rejected.
type CBORMarkerCodec struct{}

var _CBORDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

func (CBORMarkerCodec) DecodeMarker(data []byte, m *Marker) error {
	return _CBORDecMode.Unmarshal(data, m)
}
