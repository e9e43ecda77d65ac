// Package input holds a backend-neutral snapshot of held keys.
package input

import (
	"github.com/bits-and-blooms/bitset"
)

type Key uint

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyLeftShift
	KeyLeftControl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyComma
	KeyPeriod
	KeyEscape
	KeySpace

	keyCount
)

var keyNames = [...]string{
	"W", "A", "S", "D", "LeftShift", "LeftControl",
	"Up", "Down", "Left", "Right", "Comma", "Period", "Escape", "Space",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// Set is the set of keys held down at the time of the snapshot.
type Set struct {
	bits *bitset.BitSet
}

func NewSet(keys ...Key) Set {
	s := Set{bits: bitset.New(uint(keyCount))}
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

func (s Set) Press(k Key) {
	if s.bits != nil && k < keyCount {
		s.bits.Set(uint(k))
	}
}

func (s Set) Release(k Key) {
	if s.bits != nil {
		s.bits.Clear(uint(k))
	}
}

func (s Set) Down(k Key) bool {
	return s.bits != nil && s.bits.Test(uint(k))
}

// Any reports whether one of keys is held, or any key at all without arguments.
func (s Set) Any(keys ...Key) bool {
	if s.bits == nil {
		return false
	}
	if len(keys) == 0 {
		return s.bits.Any()
	}
	for _, k := range keys {
		if s.bits.Test(uint(k)) {
			return true
		}
	}
	return false
}

func (s Set) Clone() Set {
	if s.bits == nil {
		return NewSet()
	}
	return Set{bits: s.bits.Clone()}
}
