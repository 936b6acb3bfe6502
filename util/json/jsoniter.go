//go:build !stdjson

package json

import (
	stdjson "encoding/json"
	"io"
	"strconv"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	// strictJSON rejects the fields that the destination does not declare,
	// and matches the field names exactly.
	strictJSON = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		DisallowUnknownFields:  true,
		CaseSensitive:          true,
	}.Froze()
)

func init() {
	// borrowed from https://github.com/json-iterator/go/issues/145#issuecomment-323483602
	decodeNumberAsInt64IfPossible := func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
		switch iter.WhatIsNext() {
		case jsoniter.NumberValue:
			var number stdjson.Number

			iter.ReadVal(&number)
			i, err := strconv.ParseInt(string(number), 10, 64)

			if err == nil {
				*(*any)(ptr) = i
				return
			}

			f, err := strconv.ParseFloat(string(number), 64)
			if err == nil {
				*(*any)(ptr) = f
				return
			}
		default:
			*(*any)(ptr) = iter.Read()
		}
	}
	jsoniter.RegisterTypeDecoderFunc("interface {}", decodeNumberAsInt64IfPossible)
	jsoniter.RegisterTypeDecoderFunc("any", decodeNumberAsInt64IfPossible)
}

var (
	Marshal   = json.Marshal
	Unmarshal = json.Unmarshal
)

// UnmarshalStrict is the same as Unmarshal,
// but fails on unknown fields, on case-mismatched field names,
// and on an object that repeats a key.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkDuplicateKeys(data); err != nil {
		return err
	}
	return strictJSON.Unmarshal(data, v)
}

// checkDuplicateKeys walks the given document,
// and returns an error at the first object repeating a key.
func checkDuplicateKeys(data []byte) error {
	iter := strictJSON.BorrowIterator(data)
	defer strictJSON.ReturnIterator(iter)

	walkDuplicateKeys(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	return nil
}

func walkDuplicateKeys(iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		seen := map[string]struct{}{}
		iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			if _, ok := seen[key]; ok {
				it.ReportError("checkDuplicateKeys", "duplicate key "+strconv.Quote(key))
				return false
			}
			seen[key] = struct{}{}
			walkDuplicateKeys(it)
			return it.Error == nil
		})
	case jsoniter.ArrayValue:
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			walkDuplicateKeys(it)
			return it.Error == nil
		})
	default:
		iter.Skip()
	}
}
