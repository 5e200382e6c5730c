package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits as a string of '0' and '1' characters.
// The first character is the bit nearest the root of the tree.
type Code string

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the first element is the *last* bit of the code, as
// collected while walking from a leaf up to the root.
func MakeReversedCode(bits []byte) Code {
	var sb strings.Builder
	sb.Grow(len(bits))
	for index := len(bits) - 1; index >= 0; index-- {
		sb.WriteByte(bits[index])
	}
	return Code(sb.String())
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the bit at the given position as a bool, true for '1'.
func (hc Code) Bit(index int) bool {
	return hc[index] == '1'
}

// HasPrefix returns true if prefix is a leading part of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
