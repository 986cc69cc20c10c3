package rbtree

import (
	"fmt"
	"io"
)

// NodeFormatter renders the label of one node in a tree graph.
type NodeFormatter func(label string, color Color) string

func defaultNodeFormatter(label string, color Color) string {
	return fmt.Sprintf("%s(%s)", label, color)
}

// Fprint writes the tree as an indented graph, right subtree first.
func (tree *Tree[K]) Fprint(w io.Writer) error {
	return tree.FprintWith(w, defaultNodeFormatter)
}

func (tree *Tree[K]) FprintWith(w io.Writer, format NodeFormatter) error {
	if tree.destroyed || tree.root == nilIndex {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}

	return tree.printSubTree(w, format, tree.root, "", true)
}

func (tree *Tree[K]) printSubTree(w io.Writer, format NodeFormatter, i uint32, prefix string, isTail bool) error {
	n := tree.node(i)
	label := format(fmt.Sprint(n.key), n.color)
	if _, err := fmt.Fprintf(w, "%s%s── %s\n", prefix, getBranch(isTail), label); err != nil {
		return err
	}

	newPrefix := prefix + getIndent(isTail)
	switch {
	case n.left != nilIndex && n.right != nilIndex:
		if err := tree.printSubTree(w, format, n.right, newPrefix, false); err != nil {
			return err
		}
		return tree.printSubTree(w, format, n.left, newPrefix, true)

	case n.right != nilIndex:
		return tree.printSubTree(w, format, n.right, newPrefix, true)

	case n.left != nilIndex:
		return tree.printSubTree(w, format, n.left, newPrefix, true)
	}

	return nil
}

func getBranch(isTail bool) string {
	if isTail {
		return "└"
	}
	return "├"
}

func getIndent(isTail bool) string {
	if isTail {
		return "   "
	}
	return "│  "
}
