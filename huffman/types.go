// Package huffman defines the tree node type and sentinel errors for
// optimal prefix coding. Construction lives in huffman.go, code derivation
// and the encode/decode pair in codes.go, accounting in stats.go.
package huffman

import "errors"

// Sentinel errors returned by the huffman package.
var (
	// ErrEmptyInput indicates an empty text or frequency table; no tree can
	// be built from zero symbols.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrBadFrequency indicates a symbol frequency below 1.
	ErrBadFrequency = errors.New("huffman: frequency must be positive")

	// ErrNilTree indicates a nil tree root where one is required.
	ErrNilTree = errors.New("huffman: nil tree")

	// ErrUnknownSymbol indicates that Encode met a symbol with no code.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

	// ErrBadCode indicates that Decode met a rune other than '0'/'1' or ran
	// out of bits in the middle of a code.
	ErrBadCode = errors.New("huffman: invalid code sequence")
)

// Node is a vertex of a Huffman tree.
//
// A leaf carries a Symbol and its frequency; an internal node carries the
// sum of its subtree's frequencies and both children. The root exclusively
// owns its children — there are no back or shared references, so top-down
// traversal needs no cycle guard.
type Node struct {
	// Symbol is the encoded symbol; meaningful only on leaves.
	Symbol rune

	// Freq is the symbol's frequency on a leaf, or the subtree frequency
	// sum on an internal node.
	Freq int

	// Left and Right are the children; both nil exactly on leaves.
	Left, Right *Node
}

// Leaf reports whether n is a leaf (no children).
func (n *Node) Leaf() bool { return n.Left == nil && n.Right == nil }
