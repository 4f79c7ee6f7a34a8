//go:build windows

package hostmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Read reports the calling process's working set size via
// GetProcessMemoryInfo.
func Read() (Stats, error) {
	h, err := windows.GetCurrentProcess()
	if err != nil {
		return Stats{}, err
	}
	var counters windows.PROCESS_MEMORY_COUNTERS
	if err := windows.GetProcessMemoryInfo(h, &counters, uint32(unsafe.Sizeof(counters))); err != nil {
		return Stats{}, err
	}
	return Stats{ResidentBytes: uint64(counters.WorkingSetSize)}, nil
}
