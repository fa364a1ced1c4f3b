package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Node is one element of a configuration tree. The Type tag selects
// which of the remaining fields are meaningful:
//
//   - ObjectType: Fields[i] is the key for Values[i], in insertion order.
//   - ArrayType: Values holds the elements, in insertion order.
//   - StringType, NumberType, BoolType, NullType: the scalar value fields.
//
// Any node, regardless of type, may carry a Comment: text that logically
// precedes the node in rendered output. An empty Comment means no comment.
type Node struct {
	Type Type

	Fields []string
	Values []*Node

	Comment string

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// WithComment attaches a comment and returns the node for chaining.
func (y *Node) WithComment(comment string) *Node {
	y.Comment = comment
	return y
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node whose keys appear in the given order.
func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object node from an unordered map, sorting keys so the
// result is deterministic. Use FromKeyVals when key order matters.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(yMap)),
		Values: make([]*Node, 0, len(yMap)),
	}
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Get returns the value under field, or nil. Objects only.
func Get(y *Node, field string) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set replaces the value under field, or appends a new entry, preserving
// insertion order. Objects only.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Append adds an element to an array node.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Comment = y.Comment
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Fields = slices.Clone(y.Fields)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit traverses the tree depth first. f is called on each node before
// (isPost false) and after (isPost true) its children; returning false
// from the pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// FromAny coerces a plain Go value into a node. Maps are keyed in sorted
// order; use FromKeyVals to control key order.
func FromAny(v any) (*Node, error) {
	switch vv := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return vv, nil
	case bool:
		return FromBool(vv), nil
	case string:
		return FromString(vv), nil
	case int:
		return FromInt(int64(vv)), nil
	case int8:
		return FromInt(int64(vv)), nil
	case int16:
		return FromInt(int64(vv)), nil
	case int32:
		return FromInt(int64(vv)), nil
	case int64:
		return FromInt(vv), nil
	case uint:
		return FromInt(int64(vv)), nil
	case uint8:
		return FromInt(int64(vv)), nil
	case uint16:
		return FromInt(int64(vv)), nil
	case uint32:
		return FromInt(int64(vv)), nil
	case uint64:
		if vv > 1<<63-1 {
			return nil, fmt.Errorf("%w: uint64 %d overflows", ErrValue, vv)
		}
		return FromInt(int64(vv)), nil
	case float32:
		return FromFloat(float64(vv)), nil
	case float64:
		return FromFloat(vv), nil
	case []any:
		res := &Node{
			Type:   ArrayType,
			Values: make([]*Node, len(vv)),
		}
		for i, el := range vv {
			y, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			res.Values[i] = y
		}
		return res, nil
	case map[string]any:
		res := &Node{
			Type:   ObjectType,
			Fields: make([]string, 0, len(vv)),
			Values: make([]*Node, 0, len(vv)),
		}
		for _, key := range slices.Sorted(maps.Keys(vv)) {
			y, err := FromAny(vv[key])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, y)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: cannot represent %T", ErrValue, v)
	}
}
