// Package cfg builds a control-flow graph over the instruction stream of
// one compiled Blueprint function.
//
// Blocks are identified by sequential ids assigned in offset order, so an
// edge to a block with an id at or below its source is a back edge and its
// target is marked as a loop target.
package cfg

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/kismet"
)

// SizeFunc returns the number of script bytes one instruction occupies.
type SizeFunc func(kismet.Expr) int

// EdgeKind says which construct produced an edge.
type EdgeKind uint8

const (
	EdgeFallThrough EdgeKind = iota
	EdgeJump
	EdgeBranch
	EdgeCase
	EdgeSwitchEnd
	EdgeResume
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeFallThrough:
		return "fallthrough"
	case EdgeJump:
		return "jump"
	case EdgeBranch:
		return "branch"
	case EdgeCase:
		return "case"
	case EdgeSwitchEnd:
		return "switch_end"
	case EdgeResume:
		return "resume"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// Edge is one successor of a block.
type Edge struct {
	To   int
	Kind EdgeKind
}

// Block is a maximal straight-line run of instructions. Start and End
// are instruction indices, End exclusive.
type Block struct {
	ID         int
	Offset     uint32
	Start      int
	End        int
	Succs      []int
	Edges      []Edge
	LoopTarget bool
}

// Len returns the number of instructions in the block.
func (b *Block) Len() int {
	return b.End - b.Start
}

// addEdge records one synthesized edge. Succs holds each target once;
// Edges keeps every distinct (target, kind) pair, so a conditional jump
// to the next block still carries both its branch and fall-through edge.
func (b *Block) addEdge(to int, kind EdgeKind) {
	e := Edge{To: to, Kind: kind}
	if slices.Contains(b.Edges, e) {
		return
	}
	b.Edges = append(b.Edges, e)
	if !slices.Contains(b.Succs, to) {
		b.Succs = append(b.Succs, to)
	}
}

// Result is the graph for one function. It is read-only once built.
type Result struct {
	Blocks []*Block

	// Offsets holds the byte offset of every instruction.
	Offsets []uint32

	byOffset map[uint32]int
	preds    [][]int
}

// Len returns the number of blocks.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Blocks)
}

// BlockAt returns the id of the block starting at offset.
func (r *Result) BlockAt(offset uint32) (int, bool) {
	if r == nil {
		return 0, false
	}
	id, ok := r.byOffset[offset]
	return id, ok
}

// BlockOf returns the id of the block containing instruction index.
func (r *Result) BlockOf(index int) (int, bool) {
	if r == nil {
		return 0, false
	}
	return slices.BinarySearchFunc(r.Blocks, index, func(b *Block, i int) int {
		switch {
		case b.End <= i:
			return -1
		case b.Start > i:
			return 1
		default:
			return 0
		}
	})
}

// Predecessors returns the ids of blocks with an edge into id, ascending.
func (r *Result) Predecessors(id int) []int {
	if r == nil || id < 0 || id >= len(r.preds) {
		return nil
	}
	return r.preds[id]
}

// LoopTargets returns the ids of all blocks marked as loop targets.
func (r *Result) LoopTargets() []int {
	if r == nil {
		return nil
	}
	var out []int
	for _, b := range r.Blocks {
		if b.LoopTarget {
			out = append(out, b.ID)
		}
	}
	return out
}
