// Package fpu implements the fixed-point "FPU-lite" primitive spec'd for
// driving a stepper ramp generator on 8-bit MCUs with no hardware float:
// a 16-bit logarithmic-like (exponent, mantissa) encoding that supports
// fast saturating multiply/divide/square/sqrt without ever allocating or
// calling into the math package's float64 routines.
package fpu

import "math/bits"

// mantissaBits is the width of the normalized mantissa field; the
// remaining 5 bits of the 16-bit word are the exponent.
const (
	mantissaBits = 11
	mantissaMax  = 1<<mantissaBits - 1
	exponentBits = 16 - mantissaBits
	exponentMax  = 1<<exponentBits - 1 // 5 bits hold 0..31
)

// Value is a saturating, non-negative fixed-point number packed into a
// single uint16: exponent in the top 5 bits, an 11-bit mantissa in the
// low bits. Zero value is the number zero.
type Value uint16

// Max is the largest representable Value; Multiply/Divide/Sum/AbsDiff
// saturate to this instead of wrapping.
const Max Value = 0xFFFF

func pack(exponent, mantissa uint32) Value {
	if exponent > exponentMax {
		return Max
	}
	if mantissa > mantissaMax {
		mantissa = mantissaMax
	}
	return Value(exponent<<mantissaBits | mantissa)
}

func (v Value) split() (exponent uint32, mantissa uint32) {
	return uint32(v) >> mantissaBits, uint32(v) & mantissaMax
}

// fromU64 is the common encoder: round toward zero by dropping every bit
// below the mantissa's lowest retained bit, keeping the mantissa's top
// bit set once the value no longer fits un-normalized. Values whose
// magnitude needs an exponent beyond the 5-bit field saturate to Max.
func fromU64(x uint64) Value {
	if x == 0 {
		return 0
	}
	hb := bits.Len64(x) - 1 // index of highest set bit
	exponent := hb - (mantissaBits - 1)
	if exponent < 0 {
		exponent = 0
	}
	if exponent > exponentMax {
		return Max
	}
	mantissa := x >> uint(exponent)
	return pack(uint32(exponent), uint32(mantissa))
}

// FromU8 converts a uint8, exactly (uint8 always fits the mantissa).
func FromU8(x uint8) Value { return fromU64(uint64(x)) }

// FromU16 converts a uint16, round-toward-zero for x >= 1<<mantissaBits.
func FromU16(x uint16) Value { return fromU64(uint64(x)) }

// FromU32 converts a uint32, round-toward-zero for x >= 1<<mantissaBits.
func FromU32(x uint32) Value { return fromU64(uint64(x)) }

// FromU64 converts a uint64, round-toward-zero for x >= 1<<mantissaBits,
// saturating to Max once x needs more than the 5-bit exponent field can
// hold. Used where a derived constant (e.g. TICKS_PER_S^2/(2*accel))
// can genuinely exceed uint32 before it's packed down to a Value.
func FromU64(x uint64) Value { return fromU64(x) }

// toU64 decodes the full-precision magnitude. Exponent is capped at 31
// and mantissa at 2047, so the shift can never overflow a uint64.
func (v Value) toU64() uint64 {
	exponent, mantissa := v.split()
	return uint64(mantissa) << exponent
}

// ToU16 decodes to a uint16, saturating at 0xFFFF.
func (v Value) ToU16() uint16 {
	full := v.toU64()
	if full > 0xFFFF {
		return 0xFFFF
	}
	return uint16(full)
}

// ToU32 decodes to a uint32, saturating at 0xFFFFFFFF.
func ToU32(v Value) uint32 {
	full := v.toU64()
	if full > 0xFFFFFFFF {
		return 0xFFFFFFFF
	}
	return uint32(full)
}

// Multiply returns a*b, within one ULP of FromU32(a*b) where the
// mathematical product fits in the representable range, saturating to
// Max otherwise.
func Multiply(a, b Value) Value {
	hi, lo := bits.Mul64(a.toU64(), b.toU64())
	if hi != 0 {
		return Max
	}
	return fromU64(lo)
}

// Square returns a*a.
func Square(a Value) Value {
	return Multiply(a, a)
}

// Divide returns floor(a/b). Division by zero saturates to Max, standing
// in for "infinite" speed/interval rather than panicking, so a caller
// chain like Sqrt(Divide(k, n)) stays total.
func Divide(a, b Value) Value {
	bb := b.toU64()
	if bb == 0 {
		return Max
	}
	return fromU64(a.toU64() / bb)
}

// Sum returns a+b, saturating at Max.
func Sum(a, b Value) Value {
	return fromU64(a.toU64() + b.toU64())
}

// AbsDiff returns |a-b|.
func AbsDiff(a, b Value) Value {
	av, bv := a.toU64(), b.toU64()
	if av >= bv {
		return fromU64(av - bv)
	}
	return fromU64(bv - av)
}

// Sqrt returns floor(sqrt(a)) using a shift-and-subtract integer square
// root (the classic bit-by-bit algorithm used on FPU-less MCUs) so the
// whole package never touches a float register.
func Sqrt(a Value) Value {
	x := a.toU64()
	if x == 0 {
		return 0
	}
	var result uint64
	// bit starts at the highest power of four <= x.
	bit := uint64(1) << (uint(bits.Len64(x)-1) &^ 1)
	for bit > x {
		bit >>= 2
	}
	for bit != 0 {
		if x >= result+bit {
			x -= result + bit
			result = result/2 + bit
		} else {
			result /= 2
		}
		bit >>= 2
	}
	return fromU64(result)
}
