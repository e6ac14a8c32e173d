// Package solutions carries module-wide metadata.
package solutions

// Version is the current release of the solutions toolchain.
const Version = "0.1.0"
