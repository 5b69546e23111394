// Package dirbuild materializes trees of rendered files on disk. A Dir
// holds subdirectories and Files; a File pairs a format.Sink with three
// node regions (top, body, bottom) and renders them in order. Sync
// walks the tree, rendering each file to a buffer first so a render
// error never leaves a truncated artifact, and can run in diff mode to
// preview changes without touching the filesystem.
package dirbuild
