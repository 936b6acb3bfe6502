package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalStrict(t *testing.T) {
	type arg struct {
		Type  string   `json:"type"`
		Shape []uint64 `json:"shape"`
	}

	var a arg
	require.NoError(t, UnmarshalStrict([]byte(`{"type":"tensor","shape":[32,128]}`), &a))
	assert.Equal(t, arg{Type: "tensor", Shape: []uint64{32, 128}}, a)

	assert.Error(t, UnmarshalStrict([]byte(`{"type":"tensor","stride":[1]}`), &a))
	assert.NoError(t, Unmarshal([]byte(`{"type":"tensor","stride":[1]}`), &a))
}

func TestUnmarshalStrict_DuplicateKey(t *testing.T) {
	type arg struct {
		Type  string `json:"type"`
		DType string `json:"dtype"`
	}

	testCases := []struct {
		name  string
		given string
	}{
		{
			name:  "top level",
			given: `{"type":"tensor","dtype":"float32","dtype":"float16"}`,
		},
		{
			name:  "nested",
			given: `{"type":"tensor","dtype":"float32","x":[{"a":1,"a":2}]}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var a arg
			assert.Error(t, UnmarshalStrict([]byte(tc.given), &a))
		})
	}

	var a arg
	assert.NoError(t, UnmarshalStrict([]byte(`{"type":"tensor","dtype":"float32"}`), &a))
	assert.NoError(t, Unmarshal([]byte(`{"type":"tensor","dtype":"float32","dtype":"float16"}`), &a))
	assert.Equal(t, "float16", a.DType)
}
