// Package field implements bit field descriptors of hardware registers.
package field

import (
	"fmt"
	"math/bits"
)

// UInt is the set of unsigned integer types that can back a register.
type UInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Field describes a contiguous bit range within a register of type T.
// A field is immutable after construction.
type Field[T UInt] struct {
	mask  T // unshifted, contiguous, starts at bit 0
	shift uint
}

// New returns a field for the given unshifted mask and shift.
// It panics if the mask is zero, not contiguous or exceeds the register
// width once shifted, as such a layout can only be a construction defect.
func New[T UInt](mask T, shift uint) Field[T] {
	size := Size[T]()
	switch {
	case mask == 0:
		panic("field: empty mask")
	case mask&(mask+1) != 0:
		panic(fmt.Sprintf("field: mask %#x is not contiguous from bit 0", uint64(mask)))
	case shift+uint(bits.OnesCount64(uint64(mask))) > size:
		panic(fmt.Sprintf("field: mask %#x shifted by %d exceeds %d bits", uint64(mask), shift, size))
	}
	return Field[T]{mask: mask, shift: shift}
}

// FromMask returns a field for a mask given in register position.
// The shift is derived from the lowest set bit of the mask.
func FromMask[T UInt](mask T) Field[T] {
	if mask == 0 {
		panic("field: empty mask")
	}
	shift := uint(bits.TrailingZeros64(uint64(mask)))
	return New(mask>>shift, shift)
}

// Bits returns a field of count bits starting at bit offset.
func Bits[T UInt](offset, count uint) Field[T] {
	if count == 0 || count > Size[T]() {
		panic(fmt.Sprintf("field: invalid bit count %d", count))
	}
	mask := ^uint64(0) >> (64 - count)
	return New(T(mask), offset)
}

// Size returns the bit size of the register type T.
func Size[T UInt]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Read extracts the value of the field from a raw register value.
func (f Field[T]) Read(raw T) T {
	return (raw >> f.shift) & f.mask
}

// Mask returns the unshifted mask of the field.
func (f Field[T]) Mask() T {
	return f.mask
}

// Shift returns the bit offset of the field.
func (f Field[T]) Shift() uint {
	return f.shift
}

// Width returns the number of bits of the field.
func (f Field[T]) Width() uint {
	return uint(bits.OnesCount64(uint64(f.mask)))
}

// Fits returns whether the value can be held by the field.
func (f Field[T]) Fits(v T) bool {
	return v&^f.mask == 0
}

// String returns the bit range of the field, for example [7:4].
func (f Field[T]) String() string {
	lo := f.shift
	hi := f.shift + f.Width() - 1
	if lo == hi {
		return fmt.Sprintf("[%d]", lo)
	}
	return fmt.Sprintf("[%d:%d]", hi, lo)
}
