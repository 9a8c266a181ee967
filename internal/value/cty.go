package value

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/vk/blockform/internal/ref"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromCty converts a known cty value into a Value. Objects and maps become
// Maps with keys in lexical order; lists, sets and tuples become Lists.
func FromCty(v cty.Value) (Value, error) {
	if v.ContainsMarked() {
		v, _ = v.UnmarkDeep()
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("cannot convert unknown value of type %s", v.Type().FriendlyName())
	}
	if v.IsNull() {
		return Null{}, nil
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return String(v.AsString()), nil
	case ty.Equals(cty.Number):
		return Number{v: v}, nil
	case ty.Equals(cty.Bool):
		return Bool(v.True()), nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := make(List, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			item, err := FromCty(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		m := Map{}
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			item, err := FromCty(ev)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k.AsString(), err)
			}
			m.entries = append(m.entries, Entry{Key: k.AsString(), Value: item})
		}
		return m, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

// FromGo converts a native Go value into a Value. Values pass through
// unchanged, ref.Paths become References, and maps and slices are converted
// element by element so they may mix Values with native data. Go maps are
// unordered, so their keys are sorted. Everything else goes through cty's
// implied-type conversion.
func FromGo(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case ref.Path:
		return Reference{Path: t}, nil
	case cty.Value:
		return FromCty(t)
	case []Value:
		return ListOf(t...), nil
	case []any:
		out := make(List, len(t))
		for i, item := range t {
			conv, err := FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = conv
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := Map{}
		for _, k := range keys {
			conv, err := FromGo(t[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m.entries = append(m.entries, Entry{Key: k, Value: conv})
		}
		return m, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null{}, nil
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return nil, fmt.Errorf("unable to infer cty.Type for %T: %w", v, err)
	}
	cv, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return nil, fmt.Errorf("unable to convert %T: %w", v, err)
	}
	return FromCty(cv)
}
