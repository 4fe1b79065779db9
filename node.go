package roadgraph

// Node Intersection or endpoint of road links
type Node struct {
	ID         string
	Coordinate Coordinate
	// References of links starting at this node
	Outgoing []string
	// References of links ending at this node
	Incoming []string
}

func newNode(id string, coordinate Coordinate) *Node {
	return &Node{
		ID:         id,
		Coordinate: coordinate,
		Outgoing:   make([]string, 0),
		Incoming:   make([]string, 0),
	}
}

func (node *Node) addOutgoing(reference string) {
	node.Outgoing = append(node.Outgoing, reference)
}

func (node *Node) addIncoming(reference string) {
	node.Incoming = append(node.Incoming, reference)
}

// Degree Returns total number of links touching the node
func (node *Node) Degree() int {
	return len(node.Outgoing) + len(node.Incoming)
}
