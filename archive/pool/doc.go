/*
Package pool implements the archive engine's fixed-size worker pool. No
example dependency in this module's stack offers futures plus
per-worker wall-clock accounting off the shelf, so this is a small
hand-rolled channel-based pool rather than a wrapped third-party
scheduler.
*/
package pool
