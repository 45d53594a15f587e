package instance

import "math"

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// Link is the pickup/delivery index pair carried by nine-field rows in
// pickup-and-delivery instances. An index of 0 means no partner on that
// side: pickup nodes have Pickup == 0 and point at their delivery, delivery
// nodes have Delivery == 0 and point back at their pickup.
type Link struct {
	Pickup   int
	Delivery int
}

// Node is one data row: a customer or depot record.
type Node struct {
	ID      int
	X       int
	Y       int
	Demand  int
	Ready   int   // earliest service start
	Due     int   // latest service start
	Service int   // service duration
	Link    *Link // nil for plain seven-field rows
	Pos     Position
}

// Dist returns the Euclidean distance between two nodes.
func (n *Node) Dist(m *Node) float64 {
	dx := float64(n.X - m.X)
	dy := float64(n.Y - m.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Instance is one complete parsed problem description: the fleet summary
// plus all node rows in file order. It is built once per Parse call and is
// not mutated afterwards.
type Instance struct {
	Name     string  // from the header block; empty when the file has none
	Vehicles int     // fleet size
	Capacity int     // per-vehicle capacity
	Nodes    []*Node // all rows in file order
}

// Depot returns the first node, which by convention is the depot. The
// grammar does not special-case it; the convention is the benchmark sets'.
func (inst *Instance) Depot() *Node {
	if len(inst.Nodes) == 0 {
		return nil
	}
	return inst.Nodes[0]
}

// NodeByID returns the node with the given ID, or nil if not found.
func (inst *Instance) NodeByID(id int) *Node {
	for _, n := range inst.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// IsPDP reports whether this is a pickup-and-delivery instance, i.e. the
// first row carries a pickup/delivery link pair.
func (inst *Instance) IsPDP() bool {
	return len(inst.Nodes) > 0 && inst.Nodes[0].Link != nil
}
