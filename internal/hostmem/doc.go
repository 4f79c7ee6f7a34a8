// Package hostmem reports the process's own resident memory usage, split
// per platform the way hive/dirty splits its msync/fdatasync calls: one
// file per OS family behind a build tag, and a common Stats type the
// caller never has to branch on.
package hostmem
