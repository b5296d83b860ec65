// Package huffman builds optimal prefix codes over character streams:
// frequency counting, Huffman tree construction, code-table derivation,
// encoding, decoding, and compression accounting.
//
// What & Why
//
//   - A prefix code assigns each symbol a bit string such that no code is a
//     prefix of another, so a concatenated message decodes unambiguously.
//     Huffman's greedy construction — repeatedly merging the two
//     lowest-frequency subtrees — yields a prefix code whose total encoded
//     length is minimal for the given frequency distribution.
//
//   - The same construction drives DEFLATE-style compressors, canonical
//     code tables, and any frequency-skewed symbol encoding.
//
// Construction
//
//	Build counts symbol frequencies, creates one leaf per distinct symbol,
//	and feeds all leaves into a min-priority frontier ordered by frequency.
//	Leaves are seeded in ascending symbol order and equal frequencies pop
//	first-in first-out, so the tree shape — and every derived code — is
//	deterministic. The loop pops the two lightest nodes, joins them under
//	an internal node carrying their frequency sum, and pushes the join
//	back; the last remaining node is the root.
//
//	Complexity: O(n) to count a length-n text, O(k log k) to build over
//	k distinct symbols, O(k) to derive codes.
//
// Code derivation
//
//	Codes walks the tree with an explicit stack (no recursion), appending
//	'0' for each left descent and '1' for each right descent; a leaf's
//	accumulated path is its code. Prefix-freedom holds by construction:
//	every code ends at a leaf, so no code can be an ancestor path of
//	another. A single-symbol input is the one degenerate shape — a lone
//	leaf with no branch to encode — and receives the conventional
//	non-empty code "0".
//
// Error Conditions
//
//   - ErrEmptyInput    — empty text or empty frequency table; rejected
//     before any computation, no partial state.
//   - ErrBadFrequency  — a frequency below 1.
//   - ErrNilTree       — Codes or Decode received a nil root.
//   - ErrUnknownSymbol — Encode met a symbol absent from the code table.
//   - ErrBadCode       — Decode met a non-bit rune or a dangling partial code.
//
// Round-trip guarantee: Decode(Encode(text, codes), root) == text for any
// codes/root derived from text.
//
// Example usage:
//
//	root, _ := huffman.Build("aaabb")
//	codes, _ := huffman.Codes(root)       // e.g. a→"0", b→"1"
//	bits, _ := huffman.Encode("aaabb", codes)
//	back, _ := huffman.Decode(bits, root) // "aaabb"
package huffman
