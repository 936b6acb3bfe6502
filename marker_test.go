package pyprof

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpustack/pyprof-go/util/json"
)

func tensorArg(dtype string, shape ...uint64) Argument {
	return Argument{Type: ArgumentTypeTensor, Shape: shape, DType: dtype}
}

func noneArg() Argument {
	return Argument{Type: ArgumentTypeNone}
}

// newTraceMarker returns a TraceMarker of the given kernel,
// whose argument marker is the JSON encoding of the given call.
func newTraceMarker(t *testing.T, kernel, mod, op string, args ...Argument) TraceMarker {
	t.Helper()

	bs, err := json.Marshal(Marker{Mod: mod, Op: op, Args: args})
	require.NoError(t, err)
	return TraceMarker{
		Name:      kernel,
		Dir:       DirectionForward,
		Sub:       "0",
		ArgMarker: []string{string(bs)},
	}
}

func TestDecodeMarker(t *testing.T) {
	tm := newTraceMarker(t, "volta_sgemm_128x64_tn", LinearMarkerModule, LinearMarkerOperator,
		tensorArg("float32", 32, 128), tensorArg("float32", 64, 128), tensorArg("float32", 64))

	m, err := DecodeMarker(tm, nil)
	require.NoError(t, err)
	assert.Equal(t, LinearMarkerModule, m.Mod)
	assert.Equal(t, LinearMarkerOperator, m.Op)
	if assert.Len(t, m.Args, 3) {
		assert.Equal(t, []uint64{32, 128}, m.Args[0].Shape)
		assert.Equal(t, ArgumentKindTensor, m.Args[2].Kind())
	}
}

func TestDecodeMarker_Literal(t *testing.T) {
	tm := TraceMarker{
		Name: "volta_sgemm_128x64_tn",
		Dir:  DirectionBackward,
		ArgMarker: []string{
			`{"mod":"torch.nn.functional","op":"linear","args":[` +
				`{"name":"","type":"tensor","shape":[8,32,128],"dtype":"torch.float16"},` +
				`{"name":"","type":"tensor","shape":[64,128],"dtype":"torch.float16"},` +
				`{"name":"","type":"NoneType","value":null}]}`,
			`ignored`,
		},
	}

	m, err := DecodeMarker(tm, JSONMarkerCodec{})
	require.NoError(t, err)
	if assert.Len(t, m.Args, 3) {
		assert.Equal(t, ArgumentKindNone, m.Args[2].Kind())
		assert.Nil(t, m.Args[2].Value)
		dt, ok := m.Args[0].TorchDType()
		assert.True(t, ok)
		assert.Equal(t, TorchDTypeFloat16, dt)
	}
}

func TestDecodeMarker_CBOR(t *testing.T) {
	bs, err := cbor.Marshal(Marker{
		Mod: LinearMarkerModule,
		Op:  LinearMarkerOperator,
		Args: []Argument{
			tensorArg("float32", 32, 128),
			tensorArg("float32", 64, 128),
		},
	})
	require.NoError(t, err)

	tm := TraceMarker{Name: "sgemm", ArgMarker: []string{string(bs)}}
	m, err := DecodeMarker(tm, CBORMarkerCodec{})
	require.NoError(t, err)
	if assert.Len(t, m.Args, 2) {
		assert.Equal(t, []uint64{64, 128}, m.Args[1].Shape)
		assert.Equal(t, "float32", m.Args[1].DType)
	}

	_, err = DecodeMarker(tm, JSONMarkerCodec{})
	assert.ErrorIs(t, err, ErrMarkerFormat)
}

func TestDecodeMarker_Invalid(t *testing.T) {
	x, w, b := tensorArg("float32", 32, 128), tensorArg("float32", 64, 128), tensorArg("float32", 64)

	testCases := []struct {
		name  string
		given TraceMarker
	}{
		{
			name:  "no argument marker",
			given: TraceMarker{Name: "sgemm"},
		},
		{
			name:  "not json",
			given: TraceMarker{Name: "sgemm", ArgMarker: []string{`{'mod': 'torch.nn.functional'}`}},
		},
		{
			name: "unknown field",
			given: TraceMarker{Name: "sgemm", ArgMarker: []string{
				`{"mod":"torch.nn.functional","op":"linear","args":[],"extra":1}`,
			}},
		},
		{
			name:  "wrong module",
			given: newTraceMarker(t, "sgemm", "torch", LinearMarkerOperator, x, w),
		},
		{
			name:  "wrong operator",
			given: newTraceMarker(t, "sgemm", LinearMarkerModule, "conv2d", x, w),
		},
		{
			name:  "one argument",
			given: newTraceMarker(t, "sgemm", LinearMarkerModule, LinearMarkerOperator, x),
		},
		{
			name:  "four arguments",
			given: newTraceMarker(t, "sgemm", LinearMarkerModule, LinearMarkerOperator, x, w, b, b),
		},
		{
			name: "unknown dtype",
			given: newTraceMarker(t, "sgemm", LinearMarkerModule, LinearMarkerOperator,
				tensorArg("complex64", 32, 128), w),
		},
		{
			name: "tensor without shape",
			given: newTraceMarker(t, "sgemm", LinearMarkerModule, LinearMarkerOperator,
				Argument{Type: ArgumentTypeTensor, DType: "float32"}, w),
		},
		{
			name: "argument without type",
			given: newTraceMarker(t, "sgemm", LinearMarkerModule, LinearMarkerOperator,
				x, w, Argument{Value: int64(1)}),
		},
		{
			name: "negative dimension",
			given: TraceMarker{Name: "sgemm", ArgMarker: []string{
				`{"mod":"torch.nn.functional","op":"linear","args":[` +
					`{"type":"tensor","shape":[-1,128],"dtype":"float32"},` +
					`{"type":"tensor","shape":[64,128],"dtype":"float32"}]}`,
			}},
		},
		{
			name: "duplicated key",
			given: TraceMarker{Name: "sgemm", ArgMarker: []string{
				`{"mod":"torch.nn.functional","op":"linear","args":[` +
					`{"type":"tensor","shape":[32,128],"dtype":"float32","dtype":"float16"},` +
					`{"type":"tensor","shape":[64,128],"dtype":"float16"}]}`,
			}},
		},
		{
			name: "duplicated operator",
			given: TraceMarker{Name: "sgemm", ArgMarker: []string{
				`{"mod":"torch.nn.functional","op":"conv2d","op":"linear","args":[` +
					`{"type":"tensor","shape":[32,128],"dtype":"float32"},` +
					`{"type":"tensor","shape":[64,128],"dtype":"float32"}]}`,
			}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeMarker(tc.given, nil)
			assert.ErrorIs(t, err, ErrMarkerFormat)
		})
	}
}

func TestArgument_String(t *testing.T) {
	assert.Equal(t, "tensor(float32)[32,128]", tensorArg("float32", 32, 128).String())
	assert.Equal(t, "None", noneArg().String())
	assert.Equal(t, "int(3)", Argument{Type: "int", Value: int64(3)}.String())
}
