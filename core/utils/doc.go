// Package utils provides loose value conversions for decoded RPC payloads.
//
// XML-RPC and JSON decoders hand back untyped values (int64, float64, string,
// []byte) whose concrete type depends on the server. The helpers here coerce
// them into the shape the torrent sources expect without failing on
// unexpected input.
package utils
