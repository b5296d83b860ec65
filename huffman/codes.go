// Package huffman: code-table derivation and the encode/decode pair.
package huffman

import "strings"

// pathElem pairs a node with the bit path accumulated from the root.
type pathElem struct {
	node *Node
	code string
}

// Codes derives the code table from a Huffman tree: '0' per left descent,
// '1' per right descent, a leaf's accumulated path being its code.
//
// The traversal is iterative with an explicit stack; deep skewed trees
// (sorted frequency runs produce them) cannot exhaust goroutine stack.
//
// A single-leaf tree has no branch to encode, so its symbol receives the
// conventional non-empty code "0".
//
// Prefix-freedom is guaranteed by construction: every code terminates at a
// leaf, so no code is an ancestor path of another leaf's path.
//
// Errors:
//   - ErrNilTree if root is nil.
//
// Complexity: O(k) nodes visited; O(k·depth) bytes for the table.
func Codes(root *Node) (map[rune]string, error) {
	if root == nil {
		return nil, ErrNilTree
	}

	codes := make(map[rune]string)

	// Degenerate single-leaf tree: assign "0" directly.
	if root.Leaf() {
		codes[root.Symbol] = "0"

		return codes, nil
	}

	stack := []pathElem{{node: root, code: ""}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e.node.Leaf() {
			codes[e.node.Symbol] = e.code

			continue
		}
		// Right pushed first so the left subtree is visited first.
		if e.node.Right != nil {
			stack = append(stack, pathElem{node: e.node.Right, code: e.code + "1"})
		}
		if e.node.Left != nil {
			stack = append(stack, pathElem{node: e.node.Left, code: e.code + "0"})
		}
	}

	return codes, nil
}

// Encode translates text into a '0'/'1' string using the given code table.
//
// Errors:
//   - ErrUnknownSymbol if text contains a symbol absent from codes.
//
// Complexity: O(total output bits).
func Encode(text string, codes map[rune]string) (string, error) {
	var sb strings.Builder
	for _, r := range text {
		code, ok := codes[r]
		if !ok {
			return "", ErrUnknownSymbol
		}
		sb.WriteString(code)
	}

	return sb.String(), nil
}

// Decode translates a '0'/'1' string back into text by walking the tree from
// the root, restarting at each leaf.
//
// For a single-leaf tree every '0' emits the lone symbol ('1' is invalid,
// matching the "0" code Codes assigns).
//
// Errors:
//   - ErrNilTree if root is nil.
//   - ErrBadCode on any rune other than '0'/'1', or when the bit string
//     ends in the middle of a code (a dangling partial code).
//
// Complexity: O(len(bits)).
func Decode(bits string, root *Node) (string, error) {
	if root == nil {
		return "", ErrNilTree
	}

	var sb strings.Builder

	// Degenerate single-leaf tree: no branches to walk.
	if root.Leaf() {
		for _, b := range bits {
			if b != '0' {
				return "", ErrBadCode
			}
			sb.WriteRune(root.Symbol)
		}

		return sb.String(), nil
	}

	cur := root
	for _, b := range bits {
		switch b {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return "", ErrBadCode
		}
		if cur == nil {
			// Cannot happen on trees built here (internal nodes always have
			// two children), but a hand-built lopsided tree lands here.
			return "", ErrBadCode
		}
		if cur.Leaf() {
			sb.WriteRune(cur.Symbol)
			cur = root
		}
	}
	if cur != root {
		// The bit string ended partway down a code.
		return "", ErrBadCode
	}

	return sb.String(), nil
}
