package tree

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/iancoleman/orderedmap"
)

// ToOrderedMapPtr converts both value and pointer types of OrderedMap to a pointer.
// Returns nil if the value is not an OrderedMap.
func ToOrderedMapPtr(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}

// FromValue converts decoder output into a tree.
//
// Ordered maps keep their key order. Plain maps have no order of their own, so their
// keys are sorted. Date-times and other exotic scalars become strings.
func FromValue(v any) Node {
	if om := ToOrderedMapPtr(v); om != nil {
		m := NewMapping()
		for _, k := range om.Keys() {
			child, _ := om.Get(k)
			m.Set(k, FromValue(child))
		}
		return m
	}

	switch val := v.(type) {
	case Node:
		return val
	case nil:
		return NullValue()
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, FromValue(val[k]))
		}
		return m
	case []map[string]any:
		seq := make(Sequence, len(val))
		for i, item := range val {
			seq[i] = FromValue(item)
		}
		return seq
	case []any:
		seq := make(Sequence, len(val))
		for i, item := range val {
			seq[i] = FromValue(item)
		}
		return seq
	case string:
		return StringValue(val)
	case bool:
		return BoolValue(val)
	case int:
		return IntValue(int64(val))
	case int32:
		return IntValue(int64(val))
	case int64:
		return IntValue(val)
	case uint64:
		return IntValue(int64(val))
	case float32:
		return FloatValue(float64(val))
	case float64:
		return FloatValue(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return IntValue(i)
		}
		return NumberValue(val.String())
	case time.Time:
		return StringValue(val.Format(time.RFC3339Nano))
	case fmt.Stringer:
		return StringValue(val.String())
	default:
		return StringValue(fmt.Sprint(val))
	}
}
