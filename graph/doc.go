// Package graph provides the untyped blueprint model underneath the stream
// package: immutable stage descriptors, structural composition, and
// connect-time element-type validation.
//
// A Blueprint is a value; composing it (Append, Extend, Connect) always
// returns a new Blueprint and never mutates the original, so a blueprint can
// be composed further and still be used in its original form. Connecting two
// endpoints whose element types do not match fails here, before any run
// starts, with a TYPE_MISMATCH error.
//
// The keep policy recorded by Connect makes the materialized-value choice
// explicit and inspectable: a plain connect keeps the right (sink) side and
// silently discards the left, which matters when the source side carries a
// cancellation handle.
package graph
