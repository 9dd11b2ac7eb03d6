/*
Package pathutil is shared by the writer: Walk expands input roots into
a flat file list, Excluded applies glob/literal exclusion patterns,
ArchivePath rebases a file's path for storage in the container, and
AlreadyCompressed flags extensions the writer stores uncompressed
regardless of the requested codec.
*/
package pathutil
