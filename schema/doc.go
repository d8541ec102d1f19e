// Package schema models record type declarations for qremis.
//
// Overview
//   - Builder API: declare record types and their fields with
//     NewBuilder()/Type()/Field()/Of()/Repeatable()/Mandatory() then Build().
//   - Registry: the immutable result of Build; look entries up by TypeName.
//   - Entry: one record type. FieldFor maps a child record type to the single
//     field that receives it during positional construction.
//   - Describe: recursive description of a type and everything beneath it.
//   - JSONSchema: projection into a JSON Schema document.
//
// Build rules
//   - Type names are unique; field names are unique within a type.
//   - Every referenced record type is declared.
//   - At most one field per type references a given record type.
//   - Reference cycles are accepted by Build and rejected by Describe with a
//     CyclicSchemaError.
package schema
