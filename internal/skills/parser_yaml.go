//go:build !noyaml

package skills

import (
	"errors"

	"gopkg.in/yaml.v3"
)

func init() {
	fullParser = YAMLParser{}
}

var errBadMerge = errors.New("merge key value must be a mapping or a list of mappings")

// YAMLParser parses frontmatter as a YAML document
type YAMLParser struct{}

// Name returns the parser name used in configuration
func (YAMLParser) Name() string { return "yaml" }

// Parse decodes raw frontmatter, which must be a top-level mapping.
// Merge keys (<<) are resolved before the keys are collected.
func (YAMLParser) Parse(raw string) (*Header, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}

	// An empty document decodes to a zero node
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	pairs, err := flattenMapping(doc.Content[0])
	if err != nil {
		return nil, err
	}

	h := NewHeader()
	for i := 0; i+1 < len(pairs); i += 2 {
		var value any
		if err := pairs[i+1].Decode(&value); err != nil {
			return nil, err
		}
		h.Set(pairs[i].Value, value)
	}
	return h, nil
}

// flattenMapping returns the key/value nodes of m with merged pairs first,
// so that keys written in m itself win
func flattenMapping(m *yaml.Node) ([]*yaml.Node, error) {
	var merged, own []*yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			pairs, err := mergePairs(v)
			if err != nil {
				return nil, err
			}
			merged = append(merged, pairs...)
			continue
		}
		own = append(own, k, v)
	}
	return append(merged, own...), nil
}

// mergePairs expands the value of a merge key. In a list, earlier mappings
// take precedence over later ones.
func mergePairs(v *yaml.Node) ([]*yaml.Node, error) {
	if v.Kind == yaml.AliasNode {
		v = v.Alias
	}
	switch v.Kind {
	case yaml.MappingNode:
		return flattenMapping(v)
	case yaml.SequenceNode:
		var out []*yaml.Node
		for i := len(v.Content) - 1; i >= 0; i-- {
			item := v.Content[i]
			if item.Kind == yaml.AliasNode {
				item = item.Alias
			}
			if item.Kind != yaml.MappingNode {
				return nil, errBadMerge
			}
			pairs, err := flattenMapping(item)
			if err != nil {
				return nil, err
			}
			out = append(out, pairs...)
		}
		return out, nil
	default:
		return nil, errBadMerge
	}
}
