// Package calculator provides a ready-made arithmetic tool exercising the
// full annotate, define, and dispatch surface of the module.
package calculator
