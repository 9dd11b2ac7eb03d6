/*
Package container is the PRZM format's byte-level codec: prefix framing,
lone-entry framing and solid-block framing. Every multi-byte field is
little-endian; string and digest fields are length-prefixed rather than
null-terminated so paths and hex digests may contain arbitrary bytes.
*/
package container
