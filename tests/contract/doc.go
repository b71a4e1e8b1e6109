// Package contract provides contract tests that assert structural properties
// of the versioned Orbit API OpenAPI document: required paths, schema enums
// and examples, pagination headers, authorization responses and shared
// parameter references. The document is loaded once per test binary and only
// ever read.
//
// Run with: go test -tags=contract ./tests/contract/...
package contract
