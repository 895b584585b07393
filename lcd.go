package lupix

import "math"

// Intermediate fraction form used while operating. Both components are
// widened so sums and products of compact fractions can't overflow.
type wideFraction struct {
	numerator   int32
	denominator int32
}

// Exact reduction by ascending prime trial division. The denominator is
// expected to be positive. Zero numerators normalize to 0/1.
func reduceWide(numerator, denominator int32) (int32, int32) {
	if numerator == 0 { return 0, 1 }
	if denominator <= 1 { return numerator, denominator }
	absNum := numerator
	if absNum < 0 { absNum = -absNum }
	for i := 0; i < len(primes); i++ {
		prime := int32(primes[i])
		if prime > absNum || prime > denominator { break }
		for numerator%prime == 0 && denominator%prime == 0 {
			numerator /= prime
			denominator /= prime
			if denominator == 1 { return numerator, denominator }
		}
	}
	return numerator, denominator
}

// Appends the ascending prime factorization of a compact denominator
// to the given buffer. The trial division stops once prime*prime
// exceeds the remaining value; whatever remains above one is itself
// prime and goes last, preserving the ascending order.
func appendFactors(buffer []int32, value int32) []int32 {
	if value <= 1 { return buffer }
	for i := 0; i < len(primes); i++ {
		prime := int32(primes[i])
		if prime*prime > value { break }
		for value%prime == 0 {
			buffer = append(buffer, prime)
			value /= prime
		}
	}
	if value > 1 { buffer = append(buffer, value) }
	return buffer
}

// Rewrites both fractions over their lowest common denominator. Instead
// of multiplying the denominators together, which squares their
// magnitude, the prime factor streams of both denominators are merged:
// factors present on both sides are consumed once, and each factor
// missing from one side scales that side's fraction. The resulting
// denominator is the true LCM, so the widened components stay as small
// as the inputs allow.
func alignDenominators(a, b Fraction) (wideFraction, wideFraction) {
	wideA := wideFraction{int32(a.numerator), int32(a.denominator)}
	wideB := wideFraction{int32(b.numerator), int32(b.denominator)}
	if wideA.denominator == wideB.denominator { return wideA, wideB }

	var backingA, backingB [16]int32
	factorsA := appendFactors(backingA[:0], wideA.denominator)
	factorsB := appendFactors(backingB[:0], wideB.denominator)
	indexA, indexB := 0, 0
	for indexA < len(factorsA) || indexB < len(factorsB) {
		switch {
		case indexA < len(factorsA) && indexB < len(factorsB):
			factorA, factorB := factorsA[indexA], factorsB[indexB]
			switch {
			case factorA < factorB:
				wideB.numerator *= factorA
				wideB.denominator *= factorA
				indexA += 1
			case factorA == factorB:
				indexA += 1
				indexB += 1
			default:
				wideA.numerator *= factorB
				wideA.denominator *= factorB
				indexB += 1
			}
		case indexA < len(factorsA):
			wideB.numerator *= factorsA[indexA]
			wideB.denominator *= factorsA[indexA]
			indexA += 1
		default:
			wideA.numerator *= factorsB[indexB]
			wideA.denominator *= factorsB[indexB]
			indexB += 1
		}
	}
	return wideA, wideB
}

// Narrows a wide fraction back to compact form. Exact reduction is
// attempted first; when the reduced components still exceed 16 bits,
// the descending prime hunt looks for the largest prime that divides
// both components closely enough, keeping the candidate pair with the
// smallest combined division remainder (and settling immediately for
// any remainder of five or less). Numerators smaller than the prime are
// skipped so the approximation can't collapse to zero. If no prime
// qualifies the result saturates at 32767/32767.
func compactFraction(numerator, denominator int32) Fraction {
	numerator, denominator = reduceWide(numerator, denominator)
	fits := numerator >= minNumerator && numerator <= math.MaxInt16
	if fits && denominator <= math.MaxInt16 {
		return newMaybeReduced(int16(numerator), int16(denominator))
	}

	negative := numerator < 0
	absNum := numerator
	if negative { absNum = -absNum }
	bestNum, bestDen := int32(math.MaxInt16), int32(math.MaxInt16)
	bestRemainder := int32(math.MaxInt32)
	for i := len(primes) - 1; i >= 0; i-- {
		prime := int32(primes[i])
		if absNum < prime || denominator < prime { continue }
		dividedNum := absNum / prime
		if dividedNum > math.MaxInt16 { break }
		dividedDen := denominator / prime
		if dividedDen > math.MaxInt16 { break }
		remainder := absNum%prime + denominator%prime
		if remainder < bestRemainder {
			bestNum, bestDen = dividedNum, dividedDen
			bestRemainder = remainder
			if remainder <= 5 { break }
		}
	}
	if negative { bestNum = -bestNum }
	return Fraction{int16(bestNum), int16(bestDen)}
}
