// Package qcmkit converts between a constrained Markdown dialect for
// multiple-choice questionnaires (QCMs) and a structured representation.
//
// qcmkit is designed to be imported à la carte. Each subpackage can be used
// independently:
//
//   - qcm: Data model, parse options, finalization, and error taxonomy
//   - markdown: Strict line-grammar parser and canonical serializer
//   - export: JSON/YAML encodings, JSON Schema, and filename derivation
//   - config: TOML/YAML configuration files for tool defaults
//   - watch: Re-parse quiz files on change for authoring tools
//
// # Quick Start
//
// Parsing a quiz:
//
//	import "github.com/quizmd/qcmkit/markdown"
//	q, err := markdown.Parse(text, qcm.Options{})
//
// Serializing it back:
//
//	out := markdown.Serialize(q)
//
// Exporting as JSON with a suggested filename:
//
//	data, _ := export.JSON(q)
//	name := export.Filename(q.Title, ".json")
//
// # Design Philosophy
//
// qcmkit follows these principles:
//
//   - Pure, deterministic core: parsing and serialization do no I/O
//   - Fail fast with positional errors, never a partial result
//   - Round-trip safety: Serialize output always re-parses equivalently
//   - Persistence belongs to the caller, not the library
package qcmkit
