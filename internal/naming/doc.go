// Package naming converts camelCase member names into kebab-case attribute
// names.
//
// Word boundaries follow the usual identifier rules:
//   - lowercase or digit followed by uppercase: "myField" -> "my-field"
//   - end of an acronym run: "XMLParser" -> "xml-parser"
//
// Existing separators are kept as they are, so converting an already
// kebab-cased name is a no-op.
package naming
