//go:build stdjson

package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	Marshal   = json.Marshal
	Unmarshal = json.Unmarshal
)

// UnmarshalStrict is the same as Unmarshal,
// but fails on unknown fields and on an object that repeats a key.
//
// encoding/json matches field names case-insensitively,
// so keys differing only in case count as repeated.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkDuplicateKeys(data); err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// checkDuplicateKeys walks the given document,
// and returns an error at the first object repeating a key.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return walkDuplicateKeys(dec)
}

func walkDuplicateKeys(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := t.(json.Delim)
	if !ok {
		return nil
	}
	switch d {
	case '{':
		seen := map[string]struct{}{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return err
			}
			k := strings.ToLower(kt.(string))
			if _, ok := seen[k]; ok {
				return fmt.Errorf("json: duplicate key %s", strconv.Quote(kt.(string)))
			}
			seen[k] = struct{}{}
			if err = walkDuplicateKeys(dec); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err = walkDuplicateKeys(dec); err != nil {
				return err
			}
		}
	}
	// Closing delimiter.
	_, err = dec.Token()
	return err
}
