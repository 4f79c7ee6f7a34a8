package hostmem

import "testing"

func Test_Read_ReturnsPositiveResidentSize(t *testing.T) {
	stats, err := Read()
	if err != nil {
		t.Skipf("Read unsupported on this platform: %v", err)
	}
	if stats.ResidentBytes == 0 {
		t.Fatal("expected a nonzero resident set size for the running test process")
	}
}
