// Package compact reduces a decoded editor graph to its logical shape.
//
// Reroute nodes are removed by following every wire through chains of
// them to the real endpoints. Trivial helper nodes (self references and
// plain variable reads) are removed too, and the pins they fed show a
// short substitution such as "self" or "var:Health" instead.
package compact

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/pins"
)

// Node is one graph node with its decoded pins.
type Node struct {
	Name  string
	Class string
	Pins  []pins.Pin
}

func (n *Node) label(i int) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("node_%d", i)
}

// Location addresses a pin by node and pin position in the input.
type Location struct {
	Node int
	Pin  int
}

// Index maps pin ids to where they live in the graph.
type Index map[uuid.UUID]Location

// BuildIndex indexes every pin of nodes. Ids are expected to be unique;
// when they are not, the first occurrence wins.
func BuildIndex(nodes []Node) Index {
	idx := make(Index)
	for i := range nodes {
		for j := range nodes[i].Pins {
			id := nodes[i].Pins[j].ID
			if _, dup := idx[id]; !dup {
				idx[id] = Location{Node: i, Pin: j}
			}
		}
	}
	return idx
}

// Rules selects which node classes are elided. A class matches when it
// equals an entry or ends with "." followed by it, so both
// "K2Node_Knot" and "/Script/BlueprintGraph.K2Node_Knot" match
// "K2Node_Knot".
type Rules struct {
	Passthrough      []string
	Self             []string
	VariableGet      []string
	MaxInlineOutputs int
}

// DefaultRules returns the rules for stock Blueprint graphs.
func DefaultRules() Rules {
	return Rules{
		Passthrough:      []string{"K2Node_Knot"},
		Self:             []string{"K2Node_Self"},
		VariableGet:      []string{"K2Node_VariableGet"},
		MaxInlineOutputs: 2,
	}
}

func matchClass(classes []string, class string) bool {
	return slices.ContainsFunc(classes, func(c string) bool {
		return class == c || strings.HasSuffix(class, "."+c)
	})
}

// Elision says why a node was left out of the compact graph.
type Elision uint8

const (
	Visible Elision = iota
	ElidedPassthrough
	ElidedSelf
	ElidedVariable
)

func (e Elision) String() string {
	switch e {
	case Visible:
		return "visible"
	case ElidedPassthrough:
		return "passthrough"
	case ElidedSelf:
		return "self"
	case ElidedVariable:
		return "variable"
	default:
		return fmt.Sprintf("Elision(%d)", uint8(e))
	}
}

// Compactor holds a classified graph. It does not modify its input.
type Compactor struct {
	nodes []Node
	index Index
	kinds []Elision
	subst []string
}

// New classifies nodes under rules. A nil index is built from nodes.
func New(nodes []Node, index Index, rules Rules) *Compactor {
	if index == nil {
		index = BuildIndex(nodes)
	}
	c := &Compactor{
		nodes: nodes,
		index: index,
		kinds: make([]Elision, len(nodes)),
		subst: make([]string, len(nodes)),
	}
	for i := range nodes {
		c.kinds[i], c.subst[i] = classify(&nodes[i], rules)
	}
	return c
}

func classify(n *Node, rules Rules) (Elision, string) {
	inputs, outputs := 0, 0
	for i := range n.Pins {
		if n.Pins[i].Direction == pins.Output {
			outputs++
		} else {
			inputs++
		}
	}

	switch {
	case matchClass(rules.Passthrough, n.Class):
		if inputs == 1 && outputs == 1 {
			return ElidedPassthrough, ""
		}
	case matchClass(rules.Self, n.Class):
		return ElidedSelf, "self"
	case matchClass(rules.VariableGet, n.Class):
		if outputs <= rules.MaxInlineOutputs {
			return ElidedVariable, "var:" + variableName(n)
		}
	}
	return Visible, ""
}

// variableName is the name of the first data output, which the editor
// names after the variable being read.
func variableName(n *Node) string {
	for i := range n.Pins {
		p := &n.Pins[i]
		if p.Direction == pins.Output && !p.IsExec() {
			return p.Name
		}
	}
	return n.Name
}

// Kind returns the classification of node i.
func (c *Compactor) Kind(i int) Elision {
	if i < 0 || i >= len(c.kinds) {
		return Visible
	}
	return c.kinds[i]
}

// Resolve follows link through any chain of passthrough nodes and returns
// the real endpoints it reaches, in discovery order and without
// duplicates. Links to unknown pins are dropped. A (node, pin) pair is
// entered at most once per call, which ends traversal of cyclic chains.
func (c *Compactor) Resolve(link pins.LinkRef) []Location {
	var out []Location
	visited := make(map[Location]struct{})
	c.walk(link.PinID, visited, &out)
	return out
}

func (c *Compactor) walk(id uuid.UUID, visited map[Location]struct{}, out *[]Location) {
	loc, ok := c.index[id]
	if !ok || loc.Node < 0 || loc.Node >= len(c.nodes) || loc.Pin < 0 || loc.Pin >= len(c.nodes[loc.Node].Pins) {
		return
	}
	if _, seen := visited[loc]; seen {
		return
	}
	visited[loc] = struct{}{}

	if c.kinds[loc.Node] != ElidedPassthrough {
		*out = append(*out, loc)
		return
	}

	// Leave through the pins on the other side of the reroute node.
	n := &c.nodes[loc.Node]
	arrived := n.Pins[loc.Pin].Direction
	for i := range n.Pins {
		p := &n.Pins[i]
		if p.Direction == arrived {
			continue
		}
		for _, next := range p.LinkedTo {
			c.walk(next.PinID, visited, out)
		}
	}
}

// Target renders an endpoint the way connections are printed:
// the substitution of an inlined node, or "<node>:<pin>".
func (c *Compactor) Target(loc Location) string {
	if s := c.subst[loc.Node]; s != "" {
		return s
	}
	n := &c.nodes[loc.Node]
	return n.label(loc.Node) + ":" + n.Pins[loc.Pin].Name
}

// PinView is a pin as shown in the compact graph.
type PinView struct {
	Name        string
	Direction   pins.Direction
	Category    string
	Default     string
	Connections []string
}

// NodeView is a visible node of the compact graph.
type NodeView struct {
	Name  string
	Class string
	Pins  []PinView
}

// ElidedNode records a node left out of the compact graph.
type ElidedNode struct {
	Name  string
	Class string
	Kind  Elision
}

// Graph is the compacted graph.
type Graph struct {
	Nodes  []NodeView
	Elided []ElidedNode
}

// ElidedCount returns how many nodes were elided as kind.
func (g *Graph) ElidedCount(kind Elision) int {
	n := 0
	for _, e := range g.Elided {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Compact emits the visible nodes in input order with their pins in
// input order. Hidden and orphaned pins are dropped, as are pins with
// neither a connection nor a user-set default.
func (c *Compactor) Compact() Graph {
	var g Graph
	for i := range c.nodes {
		n := &c.nodes[i]
		if c.kinds[i] != Visible {
			g.Elided = append(g.Elided, ElidedNode{Name: n.label(i), Class: n.Class, Kind: c.kinds[i]})
			continue
		}

		view := NodeView{Name: n.label(i), Class: n.Class}
		for j := range n.Pins {
			p := &n.Pins[j]
			if p.Hidden || p.Orphaned {
				continue
			}
			conns := c.connections(p)
			userDefault := p.HasUserDefault()
			if len(conns) == 0 && !userDefault {
				continue
			}
			pv := PinView{
				Name:        p.Name,
				Direction:   p.Direction,
				Category:    p.Type.Category,
				Connections: conns,
			}
			if userDefault {
				pv.Default = p.Default()
			}
			view.Pins = append(view.Pins, pv)
		}
		g.Nodes = append(g.Nodes, view)
	}
	return g
}

func (c *Compactor) connections(p *pins.Pin) []string {
	var out []string
	for _, link := range p.LinkedTo {
		for _, loc := range c.Resolve(link) {
			if t := c.Target(loc); !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}
	return out
}
