// Package decoder turns wire messages (package pb) into the typed resource
// model (packages res, conf, xmltree).
//
// Decoding is synchronous and fail-fast: the first error anywhere inside a
// table, package, or XML subtree aborts that decode and is returned to the
// caller. A partially populated target is not guaranteed consistent after an
// error and must be discarded. Separate tables or documents may be decoded
// concurrently as long as each call gets its own target.
//
// Malformed but well-typed input (bad locale tag, unknown resource type,
// unparsable resource name, corrupt source pool, duplicate configuration)
// surfaces as a typed error. A wire value that uses a variant outside the
// closed set, or carries no variant at all, is a producer contract violation
// and panics: guessing a variant would corrupt the table undetectably.
package decoder
