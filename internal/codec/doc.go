// Package codec converts set trees to and from a compact binary form.
//
// A tree is encoded as nested msgpack arrays, the empty set being the empty
// array, so 2 = {{}, {{}}} becomes [[], [[]]]. EncodeString and DecodeString
// carry the same bytes as standard base64 for use on a command line.
package codec
