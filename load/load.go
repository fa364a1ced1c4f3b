package load

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/DenWav/Configurate/ir"
)

// YAML builds a configuration tree from a YAML document. JSON documents
// are accepted too, YAML being a superset. Map key order is preserved, and
// comments attached to values in the source are carried onto the nodes.
func YAML(data []byte) (*ir.Node, error) {
	var v any
	cm := yaml.CommentMap{}
	err := yaml.UnmarshalWithOptions(data, &v,
		yaml.UseOrderedMap(),
		yaml.CommentToMap(cm),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	root, err := fromDecoded(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	attachComments(root, cm)
	return root, nil
}

func Reader(r io.Reader) (*ir.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return YAML(data)
}

func File(path string) (*ir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return YAML(data)
}

func fromDecoded(v any) (*ir.Node, error) {
	switch vv := v.(type) {
	case yaml.MapSlice:
		res := &ir.Node{
			Type:   ir.ObjectType,
			Fields: make([]string, 0, len(vv)),
			Values: make([]*ir.Node, 0, len(vv)),
		}
		for _, item := range vv {
			val, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, fmt.Sprint(item.Key))
			res.Values = append(res.Values, val)
		}
		return res, nil
	case []any:
		res := &ir.Node{
			Type:   ir.ArrayType,
			Values: make([]*ir.Node, len(vv)),
		}
		for i, el := range vv {
			y, err := fromDecoded(el)
			if err != nil {
				return nil, err
			}
			res.Values[i] = y
		}
		return res, nil
	default:
		return ir.FromAny(v)
	}
}

// attachComments moves head and line comments from the decoder's comment
// map onto the nodes they precede. Foot comments have no home in the tree
// and are dropped. Unresolvable paths are skipped, attachment is best
// effort. Paths are walked in sorted order so concatenation is stable
// when several entries resolve to the same node.
func attachComments(root *ir.Node, cm yaml.CommentMap) {
	for _, path := range slices.Sorted(maps.Keys(cm)) {
		comments := cm[path]
		node := lookup(root, path)
		if node == nil {
			continue
		}
		lines := []string{}
		for _, c := range comments {
			if c.Position == yaml.CommentFootPosition {
				continue
			}
			for _, t := range c.Texts {
				lines = append(lines, strings.TrimPrefix(t, " "))
			}
		}
		if len(lines) == 0 {
			continue
		}
		if node.Comment != "" {
			node.Comment += "\n"
		}
		node.Comment += strings.Join(lines, "\n")
	}
}

// lookup resolves a comment map path like $.a.'odd key'.b[2] against the
// tree, returning nil when it does not resolve.
func lookup(root *ir.Node, path string) *ir.Node {
	rest, ok := strings.CutPrefix(path, "$")
	if !ok {
		return nil
	}
	node := root
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			var key string
			if strings.HasPrefix(rest, "'") {
				end := strings.Index(rest[1:], "'")
				if end < 0 {
					return nil
				}
				key = rest[1 : 1+end]
				rest = rest[end+2:]
			} else if end := strings.IndexAny(rest, ".["); end >= 0 {
				key, rest = rest[:end], rest[end:]
			} else {
				key, rest = rest, ""
			}
			if node.Type != ir.ObjectType {
				return nil
			}
			if node = ir.Get(node, key); node == nil {
				return nil
			}
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil || node.Type != ir.ArrayType || idx < 0 || idx >= len(node.Values) {
				return nil
			}
			node = node.Values[idx]
			rest = rest[end+1:]
		default:
			return nil
		}
	}
	return node
}
