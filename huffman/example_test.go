package huffman_test

import (
	"fmt"

	"github.com/maldonov/algolab/huffman"
)

// ExampleBuild encodes "aaabb": with frequencies {a:3, b:2} both symbols get
// single-bit codes, so the message compresses to 5 bits.
func ExampleBuild() {
	root, err := huffman.Build("aaabb")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	codes, _ := huffman.Codes(root)

	bits, _ := huffman.Encode("aaabb", codes)
	back, _ := huffman.Decode(bits, root)

	fmt.Printf("a=%s b=%s\n", codes['a'], codes['b'])
	fmt.Printf("encoded %d bits, decoded %q\n", len(bits), back)
	// Output:
	// a=1 b=0
	// encoded 5 bits, decoded "aaabb"
}

// ExampleCompressionRatio reports savings against an 8-bit fixed-width
// baseline.
func ExampleCompressionRatio() {
	freq := huffman.Frequencies("aaabb")
	root, _ := huffman.BuildFromFrequencies(freq)
	codes, _ := huffman.Codes(root)

	fmt.Printf("fixed: %d bits\n", huffman.FixedWidthBits*5)
	fmt.Printf("huffman: %d bits\n", huffman.EncodedBits(freq, codes))
	fmt.Printf("saved: %.1f%%\n", 100*huffman.CompressionRatio(freq, codes))
	// Output:
	// fixed: 40 bits
	// huffman: 5 bits
	// saved: 87.5%
}
