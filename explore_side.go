package roadgraph

// ExploreSide Endpoint of a queued link which has not been explored yet
type ExploreSide uint16

const (
	// Link was reached from its end node, walk continues at its start node
	EXPLORE_FROM_START = ExploreSide(iota + 1)
	// Link was reached from its start node, walk continues at its end node
	EXPLORE_FROM_END
)

func (iotaIdx ExploreSide) String() string {
	return [...]string{"start", "end"}[iotaIdx-1]
}
