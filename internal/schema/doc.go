// Package schema validates DID wallet documents against JSON schemas.
//
// The heavy lifting is done by github.com/santhosh-tekuri/jsonschema/v6. This
// package registers the built-in wallet key schemas, resolves short names to
// schema ids, and flattens validation failures into a list of errors.
package schema
