package qremis

import (
	js "github.com/reoring/qremis/jsonschema"
	"github.com/reoring/qremis/schema"
)

// DescribeSchema returns the nested description of root and every record type
// beneath it in the default registry. DescribeSchema(TypeRoot) covers the
// whole schema tree.
func DescribeSchema(root schema.TypeName) (schema.Description, error) {
	return schema.Describe(defaultRegistry, root)
}

// JSONSchema projects the default registry, starting at root, into a JSON
// Schema document describing the serialized record shape.
func JSONSchema(root schema.TypeName) (*js.Schema, error) {
	return schema.JSONSchema(defaultRegistry, root)
}
