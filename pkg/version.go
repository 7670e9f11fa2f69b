// Package scnet generates synthetic supply-chain network datasets.
package scnet

var (
	// Version of the scnet application. Set by build flags.
	Version = "v0.1.0"
	// Build timestamp. Set by build flags.
	Build = "n/a"
)
