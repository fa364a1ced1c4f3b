// Package load builds configuration trees from YAML and JSON documents,
// preserving document key order and carrying source comments onto the
// resulting nodes.
package load
