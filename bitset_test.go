package histboost

import "testing"

func TestBitsetSetTest(t *testing.T) {
	var b Bitset

	for _, idx := range []uint8{0, 1, 31, 32, 33, 255} {
		if b.test(idx) {
			t.Fatalf("idx %d: expected unset before Set", idx)
		}
		b.set(idx)
		if !b.test(idx) {
			t.Fatalf("idx %d: expected set after Set", idx)
		}
	}

	// Setting one bit must not disturb its neighbors across a word
	// boundary.
	if b.test(30) || b.test(34) {
		t.Fatalf("unexpected bit set near word boundary: %+v", b)
	}
}

func TestBitsetReset(t *testing.T) {
	var b Bitset
	b.set(5)
	b.set(200)
	b.reset()

	for _, idx := range []uint8{5, 200} {
		if b.test(idx) {
			t.Fatalf("idx %d: expected unset after Reset", idx)
		}
	}
	if b != (Bitset{}) {
		t.Fatalf("Reset left non-zero state: %+v", b)
	}
}
