package keymaze

import (
	"math/bits"
	"strings"
)

// Key identifies a key cell by its lowercase letter. The entrance is the
// synthetic key Start, which has no bit of its own and is never collected.
type Key byte

// Start is the synthetic key for the entrance marker '@'.
const Start Key = '@'

// Bit returns the KeySet bit for k. Only valid for 'a' through 'z'.
func (k Key) Bit() KeySet {
	return 1 << (k - 'a')
}

func (k Key) String() string {
	return string(rune(k))
}

// KeySet is a set of keys packed into a bitmask, bit 0 for 'a', bit 1 for
// 'b' and so on. The zero value is the empty set.
type KeySet uint32

// Contains reports whether k is in s.
func (s KeySet) Contains(k Key) bool {
	return s&k.Bit() != 0
}

// Plus returns s with k added.
func (s KeySet) Plus(k Key) KeySet {
	return s | k.Bit()
}

// ContainsAll reports whether o is a subset of s.
func (s KeySet) ContainsAll(o KeySet) bool {
	return s&o == o
}

// Len returns the number of keys in s.
func (s KeySet) Len() int {
	return bits.OnesCount32(uint32(s))
}

func (s KeySet) String() string {
	var b strings.Builder
	for k := Key('a'); k <= 'z'; k++ {
		if s.Contains(k) {
			b.WriteByte(byte(k))
		}
	}
	return b.String()
}
