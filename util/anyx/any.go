package anyx

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// String converts any type to a string,
// nil is converted to "None" to match the profiler's rendering.
func String(v any) string {
	switch vv := v.(type) {
	case nil:
		return "None"
	case string:
		return vv
	case []byte:
		return string(vv)
	case int:
		return strconv.FormatInt(int64(vv), 10)
	case int8:
		return strconv.FormatInt(int64(vv), 10)
	case int16:
		return strconv.FormatInt(int64(vv), 10)
	case int32:
		return strconv.FormatInt(int64(vv), 10)
	case int64:
		return strconv.FormatInt(vv, 10)
	case uint:
		return strconv.FormatUint(uint64(vv), 10)
	case uint8:
		return strconv.FormatUint(uint64(vv), 10)
	case uint16:
		return strconv.FormatUint(uint64(vv), 10)
	case uint32:
		return strconv.FormatUint(uint64(vv), 10)
	case uint64:
		return strconv.FormatUint(vv, 10)
	case float32:
		return strconv.FormatFloat(float64(vv), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(vv)
	case fmt.Stringer:
		return vv.String()
	case json.RawMessage:
		return string(vv)
	default:
		return fmt.Sprintf("%v", v)
	}
}
