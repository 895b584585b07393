// Regenerates primes.go and tables.go at the repository root. Run from
// the repository root directory:
//
//	go run ./tools/gentables
//
// The fraction fitting here intentionally mirrors FractionFromFloat32,
// but works in float64 so the table entries don't inherit float32
// noise from the generator itself.
package main

import "fmt"
import "math"
import "os"
import "strings"

const primeLimit = 1 << 15
const maxInt16 = 32767
const minNumerator = -32767
const arctanSubdivisions = 64

type fraction struct {
	num int
	den int
}

func sievePrimes() []int {
	composite := make([]bool, primeLimit)
	var primes []int
	for value := 2; value < primeLimit; value++ {
		if composite[value] { continue }
		primes = append(primes, value)
		for multiple := value * value; multiple < primeLimit; multiple += value {
			composite[multiple] = true
		}
	}
	return primes
}

// Linear denominator search for the closest fraction, stopping early
// once the error falls within one float32 epsilon.
func bestFit(value float64) fraction {
	const epsilon = 1.1920929e-07
	best := fraction{0, 1}
	bestDiff := math.Inf(1)
	for den := 1; den <= maxInt16; den++ {
		num := int(math.Floor(math.Abs(float64(den)*value) + 0.5))
		if num > maxInt16 { num = maxInt16 }
		if value < 0 { num = -num }
		diff := math.Abs(float64(num)/float64(den) - value)
		if diff < bestDiff {
			best = fraction{num, den}
			bestDiff = diff
			if diff <= epsilon { break }
		}
	}
	return best
}

// Like bestFit, but clamping values beyond the numerator range to the
// fraction extremes. Used for tangent near its asymptotes.
func saturatedFit(value float64) fraction {
	if value > maxInt16 { return fraction{maxInt16, 1} }
	if value < minNumerator { return fraction{minNumerator, 1} }
	return bestFit(value)
}

func writeFile(name string, body string) {
	const header = "// Code generated by tools/gentables. DO NOT EDIT.\n\npackage lupix\n\n"
	err := os.WriteFile(name, []byte(header+body), 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func formatPrimes(primes []int) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "// Every prime below 1<<15, in ascending order. Fraction reduction and the\n")
	fmt.Fprintf(&builder, "// lossy compaction fallback both walk this list; it has to reach the full\n")
	fmt.Fprintf(&builder, "// 16 bit range so that denominators built from large primes (e.g.\n")
	fmt.Fprintf(&builder, "// 32719*32749) can be divided back down.\n")
	fmt.Fprintf(&builder, "var primes = [%d]int16{\n", len(primes))
	for index, prime := range primes {
		if index%12 == 0 { builder.WriteString("\t") }
		fmt.Fprintf(&builder, "%d,", prime)
		if index%12 == 11 || index == len(primes)-1 {
			builder.WriteString("\n")
		} else {
			builder.WriteString(" ")
		}
	}
	builder.WriteString("}\n")
	return builder.String()
}

func formatTable(name string, entries []fraction, perLine int) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "var %s = [%d]Fraction{\n", name, len(entries))
	for index, entry := range entries {
		if index%perLine == 0 { builder.WriteString("\t") }
		fmt.Fprintf(&builder, "{%d, %d},", entry.num, entry.den)
		if index%perLine == perLine-1 || index == len(entries)-1 {
			builder.WriteString("\n")
		} else {
			builder.WriteString(" ")
		}
	}
	builder.WriteString("}\n")
	return builder.String()
}

func main() {
	primes := sievePrimes()
	writeFile("primes.go", formatPrimes(primes))

	sine := make([]fraction, 361)
	cosine := make([]fraction, 361)
	tangent := make([]fraction, 361)
	for degree := 0; degree <= 360; degree++ {
		radians := float64(degree) * math.Pi / 180
		sine[degree] = bestFit(math.Sin(radians))
		cosine[degree] = bestFit(math.Cos(radians))
		tangent[degree] = saturatedFit(math.Tan(radians))
	}
	arctan := make([]fraction, arctanSubdivisions+1)
	for step := 0; step <= arctanSubdivisions; step++ {
		arctan[step] = bestFit(math.Atan(float64(step) / arctanSubdivisions))
	}

	var body strings.Builder
	body.WriteString("// Trigonometry lookup tables. The sine, cosine and tangent tables hold one\n")
	body.WriteString("// entry per whole degree from 0 to 360 inclusive, so interpolation from\n")
	body.WriteString("// 359.x can still read a \"next\" entry. Tangent entries beyond the int16\n")
	body.WriteString("// range saturate to the Fraction extremes around the 90 and 270 degree\n")
	body.WriteString("// asymptotes. The arctangent table covers atan(x) for x in [0, 1] at\n")
	body.WriteString("// steps of 1/arctanSubdivisions, with values expressed in radians.\n\n")
	body.WriteString("const arctanSubdivisions = 64\n\n")
	body.WriteString(formatTable("sineTable", sine, 6))
	body.WriteString("\n")
	body.WriteString(formatTable("cosineTable", cosine, 6))
	body.WriteString("\n")
	body.WriteString(formatTable("tangentTable", tangent, 6))
	body.WriteString("\n")
	body.WriteString(formatTable("arctanTable", arctan, 5))
	writeFile("tables.go", body.String())
}
