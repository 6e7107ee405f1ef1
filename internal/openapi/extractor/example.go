package extractor

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	"gopkg.in/yaml.v3"
)

// Example synthesizes a JSON-formatted example for a schema node. An explicit
// example on the node always wins; otherwise one line is emitted per declared
// property, in declaration order, using the type's default literal.
//
// Synthesis is deliberately shallow: nested object and array properties
// resolve to their empty placeholder literal and are never expanded into
// their own structures. The function is pure and never fails; malformed
// schema shapes degrade to "{}".
func Example(schema *base.Schema) string {
	if schema == nil {
		return "{}"
	}

	if !nilNode(schema.Example) {
		return jsonValue(schema.Example)
	}

	props := schema.Properties
	if props == nil || props.Len() == 0 {
		return "{}"
	}

	var out strings.Builder
	out.WriteString("{\n")
	count := 0
	for pair := props.First(); pair != nil; pair = pair.Next() {
		if count > 0 {
			out.WriteString(",\n")
		}
		out.WriteString("  ")
		out.WriteString(strconv.Quote(pair.Key()))
		out.WriteString(" : ")
		out.WriteString(propertyValue(pair.Value()))
		count++
	}
	out.WriteString("\n}")
	return out.String()
}

// propertyValue renders one property: its explicit example when present,
// otherwise the default literal for its declared type.
func propertyValue(proxy *base.SchemaProxy) string {
	var schema *base.Schema
	if proxy != nil {
		schema = proxy.Schema()
	}
	if schema == nil {
		return `""`
	}

	if !nilNode(schema.Example) {
		return jsonValue(schema.Example)
	}

	switch firstType(schema.Type) {
	case "integer", "number":
		return "0"
	case "boolean":
		return "false"
	case "array":
		return "[]"
	case "object":
		return "{}"
	default:
		return `""`
	}
}

// jsonValue renders an example node as a JSON value: strings quoted, other
// scalars in their natural form, structured values as compact JSON.
func jsonValue(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!str" {
			return strconv.Quote(node.Value)
		}
		return node.Value
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return "{}"
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// plainValue renders an example node in plain string form for parameter
// records; scalars keep their literal text, structured values become compact
// JSON.
func plainValue(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return ""
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// nilNode reports whether an example node is absent or an explicit null.
func nilNode(node *yaml.Node) bool {
	if node == nil {
		return true
	}
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
