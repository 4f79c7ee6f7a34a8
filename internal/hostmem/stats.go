package hostmem

// Stats is the host process's own memory footprint, reported alongside
// objspace.Heap stats so emrtctl can show collector overhead against total
// process size.
type Stats struct {
	// ResidentBytes is the process's resident set size: the peak so far on
	// Linux and Darwin, the current working set on Windows.
	ResidentBytes uint64
}
