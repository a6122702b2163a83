package format

import "testing"

func TestPageIndex(t *testing.T) {
	if got := PageIndex(8192, 4096); got != 2 {
		t.Fatalf("PageIndex(8192,4096) = %d, want 2", got)
	}
	if got := PageIndex(100, 0); got != 0 {
		t.Fatalf("PageIndex with zero pageSize should be 0, got %d", got)
	}
}
