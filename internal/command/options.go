// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package command turns a logical option map into the argument vector for
// the external converter, applying the output-rule table to decide between
// stdout capture and file-based result retrieval.
package command

// ToKey is the reserved option key naming the destination format. It drives
// output-rule selection and is the only key the builder interprets.
const ToKey = "to"

// Option is one (key, value) pair. Value is nil for a bare flag, a string
// for a single flag, or a []string for a repeated flag.
type Option struct {
	Key   string
	Value any
}

// Options is an ordered option map; insertion order is preserved in the
// emitted argument vector.
type Options []Option

// Opt builds a single-valued option.
func Opt(key, value string) Option {
	return Option{Key: key, Value: value}
}

// Flag builds a value-less option, emitted as a bare flag.
func Flag(key string) Option {
	return Option{Key: key}
}

// List builds a repeated option, emitted as one flag per element in order.
func List(key string, values ...string) Option {
	return Option{Key: key, Value: values}
}
