// Package huffman: frequency counting and tree construction.
package huffman

import (
	"sort"

	"github.com/maldonov/algolab/pqueue"
)

// Frequencies tallies occurrences per distinct symbol in text.
// Complexity: O(n) in the text length.
func Frequencies(text string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range text {
		freq[r]++
	}

	return freq
}

// Build constructs the Huffman tree for text.
//
// Errors:
//   - ErrEmptyInput if text is empty.
//
// Complexity: O(n + k log k) — n text length, k distinct symbols.
func Build(text string) (*Node, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	return BuildFromFrequencies(Frequencies(text))
}

// BuildFromFrequencies constructs the Huffman tree for an explicit frequency
// table.
//
// Steps:
//  1. Validate: at least one symbol, every frequency ≥ 1.
//  2. Create one leaf per symbol and push all leaves into a min-priority
//     frontier ordered by frequency. Leaves are seeded in ascending symbol
//     order, and the frontier breaks frequency ties first-in first-out, so
//     the resulting tree is deterministic for a given table.
//  3. Repeatedly pop the two lowest-frequency nodes, join them under an
//     internal node carrying their frequency sum (first pop on the left),
//     and push the join back.
//  4. The last remaining node is the root. A single-symbol table yields a
//     single-leaf tree; its code is assigned separately (see Codes).
//
// Errors:
//   - ErrEmptyInput   if freq is empty.
//   - ErrBadFrequency if any frequency < 1.
//
// Complexity: O(k log k), k = distinct symbols.
func BuildFromFrequencies(freq map[rune]int) (*Node, error) {
	// 1. Validate before allocating any tree state.
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}
	symbols := make([]rune, 0, len(freq))
	for r, f := range freq {
		if f < 1 {
			return nil, ErrBadFrequency
		}
		symbols = append(symbols, r)
	}

	// 2. Seed leaves in ascending symbol order; map iteration order must
	//    not leak into the tree shape.
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	frontier := pqueue.New(func(n *Node) float64 { return float64(n.Freq) })
	for _, r := range symbols {
		frontier.Push(&Node{Symbol: r, Freq: freq[r]})
	}

	// 3. Combine until one node remains.
	for frontier.Len() > 1 {
		left, _ := frontier.Pop()
		right, _ := frontier.Pop()
		frontier.Push(&Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
		})
	}

	// 4. The survivor is the root (a lone leaf for single-symbol input).
	root, _ := frontier.Pop()

	return root, nil
}
