// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
)

// ToDot writes a GraphViz DOT description of every node reachable from r
// to w, naming the graph title. The high edge is styled red and filled
// when it carries a complement bit, mirroring how the original engine
// distinguishes a complemented high branch in its own DOT output; the
// low edge is never complemented by construction and is always drawn
// dotted.
func (m *Manager) ToDot(w io.Writer, r NodeRef, title string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", dotQuote(title))

	visited := make(map[uint32]bool)
	var walk func(ref NodeRef)
	walk = func(ref NodeRef) {
		if IsTerminal(ref) {
			return
		}
		idx := nodeOf(ref)
		if visited[idx] {
			return
		}
		visited[idx] = true

		n := m.tree.nodeAt(idx)
		fmt.Fprintf(bw, "%d %s\n", idx, dotLabel(idx, n.var_))
		fmt.Fprintf(bw, "%d -> %s [style=dotted];\n", idx, dotTarget(n.lo))
		style := "style=filled"
		if IsComplemented(n.hi) {
			style = "style=filled,color=red"
		}
		fmt.Fprintf(bw, "%d -> %s [%s];\n", idx, dotTarget(n.hi), style)

		walk(n.lo)
		walk(n.hi)
	}
	walk(r)

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// dotQuote renders title as a DOT quoted identifier; an empty title
// falls back to the package's default graph name.
func dotQuote(title string) string {
	if title == "" {
		title = "robdd"
	}
	return fmt.Sprintf("%q", title)
}

func dotTarget(r NodeRef) string {
	if r == True {
		return "true"
	}
	if r == False {
		return "false"
	}
	return fmt.Sprintf("%d", nodeOf(r))
}

func dotLabel(id uint32, var_ int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, var_, id)
}
