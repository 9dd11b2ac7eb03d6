/*
Package digest computes the container format's per-entry integrity
fingerprint. Algorithm 0 is always "none"; the 14 core algorithms occupy
identifiers 1-14 and a handful of extension algorithms occupy stable
slots beyond that range. Compute hashes a byte slice; ComputeStream
hashes an io.Reader without buffering the whole input, except for
XXH128, whose hasher buffers everything written to it.
*/
package digest
