// Package resolver implements the placeholder-resolution engine for MCP
// configuration templates.
//
// A template is a JSON-like tree whose "servers" section maps server names
// to arbitrary sub-trees. String scalars anywhere inside a server config may
// embed %NAME% placeholders. Each server resolves independently against its
// own credential document:
//
//   - FindPlaceholders collects the placeholder names referenced by a config
//   - ExtractSecrets pulls matching string values out of a credential tree
//   - Reconcile computes the missing/unused sets between the two
//   - Substitute splices credential values into every occurrence
//
// Resolve drives the full pipeline and produces a new document; inputs are
// never mutated and nothing is written to disk. Missing credentials abort
// the whole run, unused credentials are only reported.
package resolver
