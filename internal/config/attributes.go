package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aanand-mishra/onboard/internal/types"
)

// Attributes is the optional part of a configured profile. Decoding a
// mapping into a Go map would lose the order the keys were written in,
// so both decoders below walk the document instead.
type Attributes []types.Attribute

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)

	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*a = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", node.Line)
	}

	out := make(Attributes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, raw := node.Content[i], node.Content[i+1]

		val, err := yamlValue(raw)
		if err != nil {
			return fmt.Errorf("line %d: attribute %q: %w", raw.Line, key.Value, err)
		}
		out = append(out, types.Attribute{Key: key.Value, Value: val})
	}

	*a = out
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func yamlValue(n *yaml.Node) (types.Value, error) {
	n = resolveAlias(n)

	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return types.Value{}, err
			}
			return types.Bool(b), nil
		case "!!null":
			return types.Text(""), nil
		default:
			// numbers and timestamps are kept exactly as written
			return types.Text(n.Value), nil
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			c = resolveAlias(c)
			if c.Kind != yaml.ScalarNode {
				return types.Value{}, errors.New("list items must be plain values")
			}
			items = append(items, c.Value)
		}
		return types.List(items...), nil
	default:
		return types.Value{}, errors.New("nested mappings are not supported")
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("attributes: %w", err)
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("attributes must be an object")
	}

	out := make(Attributes, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("attributes: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}

		val, err := jsonValue(raw)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
		out = append(out, types.Attribute{Key: key, Value: val})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("attributes: %w", err)
	}

	*a = out
	return nil
}

func jsonValue(raw json.RawMessage) (types.Value, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return types.Value{}, err
	}

	switch v := v.(type) {
	case nil:
		return types.Text(""), nil
	case string:
		return types.Text(v), nil
	case bool:
		return types.Bool(v), nil
	case float64:
		return types.Text(string(bytes.TrimSpace(raw))), nil
	case []any:
		// Re-read the items raw so numbers keep the text they were written
		// with, the way the YAML decoder keeps scalar values.
		var rawItems []json.RawMessage
		if err := json.Unmarshal(raw, &rawItems); err != nil {
			return types.Value{}, err
		}

		items := make([]string, 0, len(rawItems))
		for i, item := range rawItems {
			switch iv := v[i].(type) {
			case string:
				items = append(items, iv)
			case nil, bool, float64:
				items = append(items, string(bytes.TrimSpace(item)))
			default:
				return types.Value{}, errors.New("list items must be plain values")
			}
		}
		return types.List(items...), nil
	default:
		return types.Value{}, errors.New("nested objects are not supported")
	}
}
