package cfg

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/kismet"
)

// Build partitions exprs into basic blocks and connects them. A nil size
// uses kismet.SerializedSize. Empty input yields an empty Result.
//
// Targets that do not land on an instruction start are dropped rather
// than reported.
func Build(exprs []kismet.Expr, size SizeFunc) *Result {
	r := &Result{byOffset: make(map[uint32]int)}
	if len(exprs) == 0 {
		return r
	}
	if size == nil {
		size = kismet.SerializedSize
	}

	var indexAt map[uint32]int
	r.Offsets, indexAt = layout(exprs, size)
	end := func(i int) uint32 {
		if i+1 < len(r.Offsets) {
			return r.Offsets[i+1]
		}
		return r.Offsets[i] + clampSize(size(exprs[i]))
	}

	starts := blockStarts(exprs, end)
	resume := resumeTargets(exprs)

	r.Blocks = partition(exprs, r.Offsets, starts, indexAt)
	r.byOffset = make(map[uint32]int, len(r.Blocks))
	for _, b := range r.Blocks {
		if _, dup := r.byOffset[b.Offset]; !dup {
			r.byOffset[b.Offset] = b.ID
		}
	}

	for _, b := range r.Blocks {
		connect(r, b, exprs[b.End-1], resume)
	}

	r.preds = make([][]int, len(r.Blocks))
	for _, b := range r.Blocks {
		for _, s := range b.Succs {
			r.preds[s] = append(r.preds[s], b.ID)
			if s <= b.ID {
				r.Blocks[s].LoopTarget = true
			}
		}
	}
	return r
}

func clampSize(n int) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// layout prefix-sums instruction sizes into offsets. The map holds the
// first instruction index at each offset.
func layout(exprs []kismet.Expr, size SizeFunc) ([]uint32, map[uint32]int) {
	offsets := make([]uint32, len(exprs))
	seen := make(map[uint32]int, len(exprs))
	var at uint32
	for i, e := range exprs {
		offsets[i] = at
		if _, ok := seen[at]; !ok {
			seen[at] = i
		}
		at += clampSize(size(e))
	}
	return offsets, seen
}

// blockStarts collects every offset that begins a block: the entry, every
// static branch target, every pushed resume address and the offset after
// each instruction that ends a block.
func blockStarts(exprs []kismet.Expr, end func(int) uint32) map[uint32]struct{} {
	starts := map[uint32]struct{}{0: {}}
	add := func(off uint32) { starts[off] = struct{}{} }

	for i, e := range exprs {
		switch x := e.(type) {
		case *kismet.Jump:
			add(x.CodeOffset)
		case *kismet.JumpIfNot:
			add(x.CodeOffset)
		case *kismet.SwitchValue:
			for _, c := range x.Cases {
				add(c.NextOffset)
			}
			add(x.EndGotoOffset)
		case *kismet.PushExecutionFlow:
			add(x.PushingAddress)
		}
		if endsBlock(e) {
			add(end(i))
		}
	}
	return starts
}

// endsBlock reports whether e transfers control somewhere other than the
// next instruction.
func endsBlock(e kismet.Expr) bool {
	switch e.(type) {
	case *kismet.Jump, *kismet.JumpIfNot, *kismet.ComputedJump, *kismet.SwitchValue,
		*kismet.PopExecutionFlow, *kismet.PopExecutionFlowIfNot,
		*kismet.Return, *kismet.EndOfScript:
		return true
	default:
		return false
	}
}

// resumeTargets replays the execution flow stack in stream order and
// records, for each pop, the address on top of the stack at that point.
// A plain pop consumes the entry; a conditional pop only peeks since it
// may fall through. The stack discipline is a runtime property, so this
// is an approximation for nested or interleaved flows.
func resumeTargets(exprs []kismet.Expr) map[int]uint32 {
	var stack []uint32
	out := make(map[int]uint32)
	for i, e := range exprs {
		switch x := e.(type) {
		case *kismet.PushExecutionFlow:
			stack = append(stack, x.PushingAddress)
		case *kismet.PopExecutionFlow:
			if n := len(stack); n > 0 {
				out[i] = stack[n-1]
				stack = stack[:n-1]
			}
		case *kismet.PopExecutionFlowIfNot:
			if n := len(stack); n > 0 {
				out[i] = stack[n-1]
			}
		}
	}
	return out
}

// partition cuts the stream at every start offset that lands on an
// instruction, and after every block-ending instruction.
func partition(exprs []kismet.Expr, offsets []uint32, starts map[uint32]struct{}, indexAt map[uint32]int) []*Block {
	cut := make([]bool, len(exprs)+1)
	cut[0] = true

	sorted := maps.Keys(starts)
	slices.Sort(sorted)
	for _, off := range sorted {
		if i, ok := indexAt[off]; ok {
			cut[i] = true
		}
	}
	for i, e := range exprs {
		if endsBlock(e) {
			cut[i+1] = true
		}
	}

	var blocks []*Block
	for i := 0; i < len(exprs); {
		j := i + 1
		for j < len(exprs) && !cut[j] {
			j++
		}
		blocks = append(blocks, &Block{
			ID:     len(blocks),
			Offset: offsets[i],
			Start:  i,
			End:    j,
		})
		i = j
	}
	return blocks
}

// connect synthesizes the outgoing edges of b from its last instruction.
func connect(r *Result, b *Block, last kismet.Expr, resume map[int]uint32) {
	to := func(off uint32, kind EdgeKind) {
		if id, ok := r.byOffset[off]; ok {
			b.addEdge(id, kind)
		}
	}
	fall := func() {
		if b.ID+1 < len(r.Blocks) {
			b.addEdge(b.ID+1, EdgeFallThrough)
		}
	}
	target, hasResume := resume[b.End-1]
	switch x := last.(type) {
	case *kismet.Jump:
		to(x.CodeOffset, EdgeJump)
	case *kismet.JumpIfNot:
		to(x.CodeOffset, EdgeBranch)
		fall()
	case *kismet.SwitchValue:
		for _, c := range x.Cases {
			to(c.NextOffset, EdgeCase)
		}
		to(x.EndGotoOffset, EdgeSwitchEnd)
	case *kismet.Return, *kismet.EndOfScript, *kismet.ComputedJump:
	case *kismet.PopExecutionFlow:
		if hasResume {
			to(target, EdgeResume)
		}
	case *kismet.PopExecutionFlowIfNot:
		if hasResume {
			to(target, EdgeResume)
		}
		fall()
	default:
		fall()
	}
}
