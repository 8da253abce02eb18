// Package bcnum implements the arbitrary-precision decimal fixed-point
// number core of a POSIX bc-style calculator.
//
// A Number models the rational value
//
//	value * 10**(-scale)
//
// where value is an unbounded signed integer (math/big.Int) and scale is
// the count of decimal digits tracked after the point. Operations return a
// freshly allocated handle holding the result (Sqrt, Negate and InitZero
// instead update the caller's slot), arguments may alias, and ref-counted
// handles are shared via Copy rather than duplicated.
//
// Numbers are handles, not values: the zero Number is an empty slot, and
// writing a fresh Number into a slot that already owns a share must
// Release the prior occupant first. See Copy and Release.
package bcnum

import "math/big"

// Number is a shared-ownership handle to a decimal value. The zero Number
// is an empty slot and owns no share.
type Number struct {
	n *numInner
}

// numInner is the pooled, ref-counted storage behind a Number handle.
type numInner struct {
	scale     uint32
	value     big.Int
	refs      uint32
	singleton bool
	next      *numInner // free-list link; valid only while pooled
}

func (n *numInner) unique() bool {
	return n.refs == 1 && !n.singleton
}

// New allocates a handle (reusing the free list when possible) with value
// 0 and the given scale.
func New(scale uint32) Number {
	inner := defaultPool.get()
	inner.scale = scale
	return Number{n: inner}
}

// Copy increments the handle's ref count and returns the same identity,
// per the handle lifecycle in spec §4.1: copy produces an additional share
// of the same underlying record, not a new one.
func (n Number) Copy() Number {
	if n.n == nil {
		return Number{}
	}
	n.n.refs++
	return n
}

// Clone deep-copies n into a freshly allocated, uniquely-held handle. Unlike
// Copy, Clone does not share storage with n and does not touch n's ref
// count; it exists for callers that need an independent mutable scratch
// value.
func (n Number) Clone() Number {
	out := New(n.n.scale)
	out.n.value.Set(&n.n.value)
	return out
}

// Set overwrites the value held in a uniquely-held *dst with a deep copy of
// src, without touching src's ref count. dst must not share storage with
// any other live handle.
func Set(dst *Number, src Number) {
	if dst.n == nil {
		*dst = New(src.n.scale)
	} else {
		dst.n.scale = src.n.scale
	}
	dst.n.value.Set(&src.n.value)
}

// Release decrements the ref count of the share held by *slot and, if that
// was the last share, returns the record to the free list. Singletons are
// never returned to the pool: per spec §9, a release attempt against Zero,
// One, or Two is a documented no-op rather than an error. Releasing an
// empty slot is a no-op. The slot is always left empty afterward.
func Release(slot *Number) {
	if slot == nil || slot.n == nil {
		return
	}
	inner := slot.n
	*slot = Number{}
	if inner.singleton {
		return
	}
	inner.refs--
	if inner.refs == 0 {
		defaultPool.put(inner)
	}
}

// InitZero releases the prior occupant of *slot and installs a fresh share
// of the Zero singleton.
func InitZero(slot *Number) {
	Release(slot)
	*slot = Zero.Copy()
}

// Negate sets *slot to -*slot. If *slot is the sole referent of its
// storage, the sign is flipped in place; otherwise a fresh handle carrying
// the negated value is allocated and installed, and the prior occupant is
// released. Singletons are never mutated in place.
func Negate(slot *Number) {
	if slot == nil || slot.n == nil {
		return
	}
	if slot.n.unique() {
		slot.n.value.Neg(&slot.n.value)
		return
	}
	fresh := New(slot.n.scale)
	fresh.n.value.Neg(&slot.n.value)
	old := *slot
	*slot = fresh
	Release(&old)
}

// IsZero reports whether n models the value 0, irrespective of scale. An
// empty slot (the zero Number, e.g. the quotient Divmod returns when
// wantQuotient is false) counts as zero.
func (n Number) IsZero() bool {
	return n.n == nil || n.n.value.Sign() == 0
}

// IsNeg reports whether n is strictly negative. An empty slot is not
// negative.
func (n Number) IsNeg() bool {
	return n.n != nil && n.n.value.Sign() < 0
}

// Length returns the count of decimal digits of |value|; zero (including an
// empty slot) has length 1.
func (n Number) Length() int {
	if n.n == nil || n.n.value.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(&n.n.value).String())
}

// ScaleOf returns n's scale. An empty slot has scale 0.
func (n Number) ScaleOf() uint32 {
	if n.n == nil {
		return 0
	}
	return n.n.scale
}

// DigitsAfterPoint is an alias for ScaleOf, named for readability at call
// sites that format output.
func (n Number) DigitsAfterPoint() uint32 {
	return n.ScaleOf()
}

// DigitsBeforePoint returns the number of digits printed left of the point,
// which is always at least 1.
func (n Number) DigitsBeforePoint() int {
	d := n.Length() - int(n.ScaleOf())
	if d < 1 {
		return 1
	}
	return d
}

// IsInt reports whether n's fractional digits, if any, are all zero. An
// empty slot is treated as the integer zero.
func (n Number) IsInt() bool {
	if n.n == nil || n.n.scale == 0 {
		return true
	}
	r := new(big.Int).Rem(&n.n.value, pow10(n.n.scale))
	return r.Sign() == 0
}
