// ABOUTME: Main garbagecollector package providing version information and package documentation
// ABOUTME: This is the root package for the mark-and-sweep heap library

// Package garbagecollector provides a small virtual machine heap with an
// embedded mark-and-sweep garbage collector. The heap package holds the
// actual implementation: a tagged object model (ints and pairs), an
// explicit root stack, and a collector that reclaims everything the
// roots cannot reach, cycles included.
package garbagecollector

// Version is the semantic version of the library
const Version = "0.1.0-dev"
