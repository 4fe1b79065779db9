package roadgraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// RenderLinks Returns text dump of every link in ascending reference order
func RenderLinks(graph *Graph) (string, error) {
	var sb strings.Builder
	for _, ref := range graph.LinkReferences() {
		block, err := RenderLink(graph, ref)
		if err != nil {
			return "", err
		}
		sb.WriteString(block)
	}
	return sb.String(), nil
}

// RenderLink Returns text block describing link, its endpoints and geometry
func RenderLink(graph *Graph, reference string) (string, error) {
	link, ok := graph.Link(reference)
	if !ok {
		return "", errors.Wrapf(ErrInconsistentGraph, "No such link '%s'", reference)
	}
	start, ok := graph.Node(link.Start)
	if !ok {
		return "", errors.Wrapf(ErrInconsistentGraph, "Link '%s' starts at unknown node '%s'", reference, link.Start)
	}
	end, ok := graph.Node(link.End)
	if !ok {
		return "", errors.Wrapf(ErrInconsistentGraph, "Link '%s' ends at unknown node '%s'", reference, link.End)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Link %s:\n\n", link.Reference)
	fmt.Fprintf(&sb, "Startnode: %s\n%s\n", start.ID, renderAdjacency(start))
	fmt.Fprintf(&sb, "Endnode: %s\n%s\n", end.ID, renderAdjacency(end))
	sb.WriteString("Coordinates:\n")
	for _, c := range link.Coordinates {
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	sb.WriteString("\n\n\n")
	return sb.String(), nil
}

func renderAdjacency(node *Node) string {
	return fmt.Sprintf("Incoming links: %s\nOutgoing links: %s\n",
		strings.Join(node.Incoming, ", "),
		strings.Join(node.Outgoing, ", "),
	)
}

// RenderStep Returns single trace line. Arrows follow the link's own direction
func RenderStep(step TraversalStep) string {
	if step.Backward {
		return fmt.Sprintf("%-10s\t<------    \t%-30s\t<------    \t%s", step.From, step.Reference, step.To)
	}
	return fmt.Sprintf("%-10s\t------> \t%-30s\t------> \t%s", step.From, step.Reference, step.To)
}

// RenderTrace Returns trace lines joined by new line
func RenderTrace(steps []TraversalStep) string {
	lines := make([]string, len(steps))
	for i := range steps {
		lines[i] = RenderStep(steps[i])
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteTrace Writes trace lines to w
func WriteTrace(w io.Writer, steps []TraversalStep) error {
	_, err := io.WriteString(w, RenderTrace(steps))
	if err != nil {
		return errors.Wrap(err, "Can't write trace")
	}
	return nil
}
