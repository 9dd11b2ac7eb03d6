/*
Package reader exposes Scan, the archive engine's only entry point for
turning an on-disk container into the descriptor list the extractor,
remover and verifier build their work plans from.
*/
package reader
