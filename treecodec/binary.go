package treecodec

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffdict"
)

const binaryMagic = "HDT1"

func writeBinary(w io.Writer, root *huffdict.Node) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(binaryMagic); err != nil {
		return errors.WithStack(err)
	}

	bits := bitio.NewWriter(bw)
	if err := bits.WriteBool(root != nil); err != nil {
		return errors.WithStack(err)
	}
	if root != nil {
		if err := writeBinaryNode(bits, root); err != nil {
			return err
		}
	}
	if err := bits.Close(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(bw.Flush())
}

func writeBinaryNode(bits *bitio.Writer, n *huffdict.Node) error {
	if n.IsLeaf() {
		if err := bits.WriteBool(true); err != nil {
			return errors.WithStack(err)
		}
		if err := bits.WriteBits(uint64(n.Value), 8); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(bits.WriteBits(n.Frequency, 64))
	}

	if err := bits.WriteBool(false); err != nil {
		return errors.WithStack(err)
	}
	if err := writeBinaryNode(bits, n.Left); err != nil {
		return err
	}
	return writeBinaryNode(bits, n.Right)
}

func readBinary(r io.Reader) (*huffdict.Node, error) {
	br := bufio.NewReader(r)

	var magic [len(binaryMagic)]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, errors.Wrap(ErrMalformedTree, err.Error())
	}
	if string(magic[:]) != binaryMagic {
		return nil, malformed("bad magic %q", magic[:])
	}

	bits := bitio.NewReader(br)
	present, err := bits.ReadBool()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedTree, err.Error())
	}
	if !present {
		return nil, nil
	}
	return readBinaryNode(bits, 0)
}

func readBinaryNode(bits *bitio.Reader, depth int) (*huffdict.Node, error) {
	if depth >= maxDepth {
		return nil, malformed("tree is nested deeper than %d", maxDepth)
	}

	isLeaf, err := bits.ReadBool()
	if err != nil {
		return nil, errors.Wrap(ErrMalformedTree, err.Error())
	}

	if isLeaf {
		value, err := bits.ReadBits(8)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedTree, err.Error())
		}
		freq, err := bits.ReadBits(64)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedTree, err.Error())
		}
		if freq == 0 {
			return nil, malformed("leaf %d has no frequency", value)
		}
		return huffdict.NewLeaf(byte(value), freq), nil
	}

	left, err := readBinaryNode(bits, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readBinaryNode(bits, depth+1)
	if err != nil {
		return nil, err
	}
	return huffdict.NewInternal(left, right), nil
}
