// Package kernel holds the value objects shared by every aggregate:
// UUID identifiers and geographic Position.
package kernel
