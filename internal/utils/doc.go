// Package utils contains small helpers shared across the module: pointer
// construction for literals and guarded resource cleanup.
package utils
