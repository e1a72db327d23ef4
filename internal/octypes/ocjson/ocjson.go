// Package ocjson implements the dual typed/untyped JSON serialization
// protocol over internal/octypes/value's concrete types, dispatching
// reconstruction through internal/octypes/registry by the "type" tag.
package ocjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

// ErrUnknownType is returned when a typed JSON node names a "type" the
// registry has never registered.
var ErrUnknownType = errors.New("ocjson: unknown type")

func init() {
	// Wire value's generic decode hook to this package's dispatcher, closing
	// the loop the Identifiable/Factory split in registry was built to avoid
	// (see value.DecodeAnyTyped's doc comment).
	value.DecodeAnyTyped = FromTyped
}

// ToTyped renders v in typed (self-describing) mode.
func ToTyped(v value.Value) (any, error) {
	if v == nil {
		return nil, value.ErrNilArgument
	}
	return v.JSON(true)
}

// ToUntyped renders v in untyped (lossy, shape-only) mode.
func ToUntyped(v value.Value) (any, error) {
	if v == nil {
		return nil, value.ErrNilArgument
	}
	return v.JSON(false)
}

// FromTyped reconstructs a Value from a typed-JSON node (spec §4.3.2).
// Primitives are recognized by shape; JSON objects carrying a "type" field
// route through registry.FactoryByName; an untagged array reconstructs as an
// untyped Array of recursively-typed elements.
func FromTyped(node any) (value.Value, error) {
	switch n := node.(type) {
	case nil:
		return value.NullValue, nil
	case bool:
		return value.BooleanFor(n), nil
	case string:
		return value.NewString(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("ocjson: %w", err)
		}
		return value.NewFloat64(f), nil
	case float64:
		return value.NewFloat64(n), nil
	case []any:
		arr := value.NewMutableArray(len(n))
		for _, raw := range n {
			elem, err := FromTyped(raw)
			if err != nil {
				releaseArrayElements(arr)
				return nil, err
			}
			_ = arr.Append(elem)
			value.Release(elem)
		}
		return arr, nil
	case map[string]any:
		typeName, ok := n["type"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: object has no \"type\" field", value.ErrTypeMismatch)
		}
		factory, _, ok := registry.FactoryByName(typeName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
		}
		built, err := factory(n)
		if err != nil {
			return nil, err
		}
		v, ok := built.(value.Value)
		if !ok {
			return nil, fmt.Errorf("%w: factory for %q did not produce a value.Value", value.ErrTypeMismatch, typeName)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized JSON node %T", value.ErrTypeMismatch, node)
	}
}

// FromUntyped reconstructs a Value from an untyped-JSON node using shape
// alone (spec §4.3.1): object -> Dictionary, array -> Array, and scalars map
// to their natural Value. Every number, whether a json.Number, a float64 or
// a native Go number as emitted by ToUntyped, becomes a float64 Number.
func FromUntyped(node any) (value.Value, error) {
	switch n := node.(type) {
	case nil:
		return value.NullValue, nil
	case bool:
		return value.BooleanFor(n), nil
	case string:
		return value.NewString(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("ocjson: %w", err)
		}
		return value.NewFloat64(f), nil
	case float64:
		return value.NewFloat64(n), nil
	case float32:
		return value.NewFloat64(float64(n)), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		f, err := json.Number(fmt.Sprint(n)).Float64()
		if err != nil {
			return nil, fmt.Errorf("ocjson: %w", err)
		}
		return value.NewFloat64(f), nil
	case []any:
		arr := value.NewMutableArray(len(n))
		for _, raw := range n {
			elem, err := FromUntyped(raw)
			if err != nil {
				releaseArrayElements(arr)
				return nil, err
			}
			_ = arr.Append(elem)
			value.Release(elem)
		}
		return arr, nil
	case map[string]any:
		dict := value.NewMutableDictionary()
		for k, raw := range n {
			elem, err := FromUntyped(raw)
			if err != nil {
				releaseDictValues(dict)
				return nil, err
			}
			dict.Set(k, elem)
			value.Release(elem)
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized JSON node %T", value.ErrTypeMismatch, node)
	}
}

// releaseArrayElements releases every element already appended to a
// partially-built Array before the caller discards it on error (spec §4.3's
// "the container releases any partially-built output").
func releaseArrayElements(arr *value.Array) {
	for i := 0; i < arr.Count(); i++ {
		if e, err := arr.GetAt(i); err == nil {
			value.Release(e)
		}
	}
}

func releaseDictValues(dict *value.Dictionary) {
	_, vals := dict.KeysAndValues()
	for _, v := range vals {
		value.Release(v)
	}
}

// decodeJSON runs encoding/json with UseNumber so large integers survive the
// decode step as json.Number instead of truncating through float64, which
// OCNumber's typed factory depends on for exact 64-bit integers. The
// bare-number paths of FromTyped and FromUntyped still convert a json.Number
// to a float64 Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, fmt.Errorf("ocjson: decode: %w", err)
	}
	return node, nil
}

// MarshalTyped renders v to typed-mode JSON bytes.
func MarshalTyped(v value.Value) ([]byte, error) {
	node, err := ToTyped(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(node)
}

// MarshalUntyped renders v to untyped-mode JSON bytes.
func MarshalUntyped(v value.Value) ([]byte, error) {
	node, err := ToUntyped(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(node)
}

// UnmarshalTyped parses typed-mode JSON bytes into a Value.
func UnmarshalTyped(data []byte) (value.Value, error) {
	node, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return FromTyped(node)
}

// UnmarshalUntyped parses untyped-mode JSON bytes into a Value.
func UnmarshalUntyped(data []byte) (value.Value, error) {
	node, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return FromUntyped(node)
}
