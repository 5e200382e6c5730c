// Package huffman builds prefix-free Huffman codes for an alphabet of Unicode
// code points, given the number of times each code point occurs.
//
// The codes are derived the classical way: the two lightest trees of a forest
// are merged repeatedly until one tree remains, and each symbol's code is the
// path from the root to its leaf, with '0' for a left turn and '1' for a right
// turn.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
