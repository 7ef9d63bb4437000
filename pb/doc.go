// Package pb contains the wire message model for compiled resource
// containers.
//
// The types mirror the schema in resources.proto and are maintained by hand
// against it. Struct tags carry the field numbers so the messages can be
// parsed with github.com/golang/protobuf/proto; oneof groups use the wrapper
// interface pattern so exactly one variant is set after unmarshalling.
//
// The messages are a transport model only. Decoding them into the typed
// resource table and XML tree lives in package decoder.
package pb
