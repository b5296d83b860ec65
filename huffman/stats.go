// Package huffman: compression accounting over a frequency table and its
// derived code table. Reporting-only helpers; not part of the coding contract.
package huffman

// FixedWidthBits is the baseline symbol width used by CompressionRatio:
// the conventional 8 bits per symbol of an uncompressed byte encoding.
const FixedWidthBits = 8

// EncodedBits returns the total encoded length in bits:
// Σ frequency(symbol) × len(code(symbol)), over symbols present in freq.
// Symbols missing from codes contribute nothing; pair this with tables
// derived from the same tree to keep the sum meaningful.
// Complexity: O(k).
func EncodedBits(freq map[rune]int, codes map[rune]string) int {
	total := 0
	for r, f := range freq {
		total += f * len(codes[r])
	}

	return total
}

// CompressionRatio returns the fraction of bits saved versus a fixed-width
// FixedWidthBits-per-symbol baseline, in [0, 1) for any effective code
// (negative if the code expands the input). An empty table yields 0.
// Complexity: O(k).
func CompressionRatio(freq map[rune]int, codes map[rune]string) float64 {
	symbols := 0
	for _, f := range freq {
		symbols += f
	}
	if symbols == 0 {
		return 0
	}
	baseline := symbols * FixedWidthBits

	return 1 - float64(EncodedBits(freq, codes))/float64(baseline)
}
