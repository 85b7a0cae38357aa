package bufpool

import "testing"

func TestGetReturnsRequestedLength(t *testing.T) {
	buf := Get(10)
	if len(buf) != 10 {
		t.Fatalf("len = %d, want 10", len(buf))
	}
}

func TestGetBeyondPooledCapacityAllocatesFresh(t *testing.T) {
	buf := Get(1 << 20)
	if len(buf) != 1<<20 {
		t.Fatalf("len = %d, want %d", len(buf), 1<<20)
	}
}

func TestPutGetRoundTripDoesNotPanic(t *testing.T) {
	buf := Get(128)
	for i := range buf {
		buf[i] = byte(i)
	}
	Put(buf)
	again := Get(64)
	if len(again) != 64 {
		t.Fatalf("len = %d, want 64", len(again))
	}
}
