/*
Package writer implements Create and Append, the archive engine's only
two ways to produce a PRZM container. Non-solid creation fans out one
task per file across the worker pool; solid creation runs sequentially
against one shared buffer and compresses it once.
*/
package writer
