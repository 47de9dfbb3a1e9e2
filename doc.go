// Package huffdict implements a byte-oriented Huffman dictionary with
// resumable, buffer-bounded encode and decode operations.  A Dictionary is
// trained from one or more chunks of input, after which arbitrarily large
// streams can be pushed through fixed-size buffers by threading the returned
// bit offsets from one call to the next.
//
// Bits are packed least significant bit first.  When walking the tree, a 1
// bit selects the left child and a 0 bit selects the right child.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffdict
