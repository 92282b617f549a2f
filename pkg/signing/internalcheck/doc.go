// Package internalcheck holds source policy tests for the signing packages.
//
// The tests load the packages with golang.org/x/tools/go/packages and walk
// their syntax trees looking for patterns that are unsafe around key
// material. It has no exported API.
package internalcheck
