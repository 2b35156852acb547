package entity

// GroupOp combines the results of a group's children.
type GroupOp string

const (
	And GroupOp = "and"
	Or  GroupOp = "or"
)

// Node is a node in a filter expression tree, either a Condition or a Group.
type Node interface {
	NodeID() string
}

// Condition is a leaf of the filter tree: one field/operator/value test.
// Value2 is the upper bound for range operators, empty otherwise.
type Condition struct {
	ID       string
	Field    string
	Operator string
	Value    string
	Value2   string
}

func (c Condition) NodeID() string { return c.ID }

// Group is an interior node combining children with And or Or.
// Groups nest to arbitrary depth.
type Group struct {
	ID       string
	Op       GroupOp
	Children []Node
}

func (g Group) NodeID() string { return g.ID }

// Sort represents a sort directive over the move table.
type Sort struct {
	Field string `yaml:"field"`
	Desc  bool   `yaml:"desc,omitempty"`
}
