//go:build linux

package hostmem

import "golang.org/x/sys/unix"

// Read reports the calling process's peak resident set size (ru_maxrss)
// via getrusage, which on Linux returns it in kilobytes.
func Read() (Stats, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Stats{}, err
	}
	return Stats{ResidentBytes: uint64(ru.Maxrss) * 1024}, nil
}
