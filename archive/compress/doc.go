/*
Package compress dispatches on the container format's codec identifier to
the matching streaming reader/writer. Algorithm values are the on-disk
tag stored per entry and per solid block; List returns them in their
stable, never-renumbered order.
*/
package compress
