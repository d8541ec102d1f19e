// Package qremis provides an in-memory object model for PREMIS-style
// preservation metadata:
//
// - A generic record engine that validates construction and every
// Set/Add/Get/Delete against a record type's declared fields
// - The default registry of record types (Object, Event, Agent, Rights,
// Relationship and their sub-records)
// - Schema introspection (DescribeSchema) and JSON Schema export
// - A stable error model: typed errors carrying codes, plus Issues (JSON
// Pointer, code, message) for whole-tree reporting
// - Encoding to and decoding from JSON/YAML in a documented shape
//
// Design policy:
// - Keep only public APIs in the root package; put the schema model and
// builder under schema/ and storage details under internal/.
// - Schema data is compiled in and immutable after package initialization.
// - Records carry no locks; one writer per record tree.
//
// Typical usage:
//
//	fx, err := qremis.New(qremis.TypeFixity, nil, qremis.Values{
//		"messageDigestAlgorithm": "SHA-256",
//		"messageDigest":          "abc123",
//	})
//	oc, err := qremis.New(qremis.TypeObjectCharacteristics, []*qremis.Record{fx, format}, nil)
//	_ = oc.Add("fixity", otherFixity)
//	data, err := qremis.Serialize(oc)
//
//	desc, err := qremis.DescribeSchema(qremis.TypeRoot)
package qremis
