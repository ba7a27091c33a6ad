package analysis

import (
	"bytes"
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/config"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/pins"
)

var fixtureNames = asset.Names{
	"None",      // 0
	"then",      // 1
	"execute",   // 2
	"exec",      // 3
	"self",      // 4
	"Target",    // 5
	"object",    // 6
	"InputPin",  // 7
	"OutputPin", // 8
}

// extrasWriter encodes node Extras for the current object version.
type extrasWriter struct {
	bytes.Buffer
}

func (w *extrasWriter) i32(v int32) *extrasWriter {
	binary.Write(&w.Buffer, binary.LittleEndian, v)
	return w
}

func (w *extrasWriter) u32(v uint32) *extrasWriter {
	binary.Write(&w.Buffer, binary.LittleEndian, v)
	return w
}

func (w *extrasWriter) u8(v uint8) *extrasWriter {
	w.WriteByte(v)
	return w
}

func (w *extrasWriter) guid(id uuid.UUID) *extrasWriter {
	w.Write(id[:])
	return w
}

func (w *extrasWriter) name(index int32) *extrasWriter {
	return w.i32(index).i32(0)
}

func (w *extrasWriter) emptyText() *extrasWriter {
	return w.u32(0).u8(0xFF).u32(0)
}

type fixturePin struct {
	id        uuid.UUID
	name      int32
	direction pins.Direction
	category  int32
	links     []uuid.UUID
}

func (w *extrasWriter) pin(p fixturePin) *extrasWriter {
	w.i32(0).guid(p.id).name(p.name)
	w.emptyText().i32(-1).i32(0).u8(uint8(p.direction))
	w.name(p.category).name(0).i32(0)
	w.i32(0).name(0).guid(uuid.Nil)
	w.name(0).name(0).i32(0).u32(0).u32(0).u32(0)
	w.u8(0).u32(0).u32(0).u32(0).u32(0)
	w.u32(0) // single precision float flag
	w.i32(0).i32(0).i32(0).emptyText()
	w.i32(int32(len(p.links)))
	for _, l := range p.links {
		w.u32(0).i32(0).guid(l)
	}
	w.i32(0).u32(1).u32(1).guid(uuid.Nil)
	return w.u32(0)
}

func extras(ps ...fixturePin) []byte {
	var w extrasWriter
	w.i32(int32(len(ps)))
	for _, p := range ps {
		w.pin(p)
	}
	return w.Bytes()
}

func pinID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}

// eventGraph is an event wired through a reroute node into a call whose
// target is a self node, plus one corrupt node and one without pins.
func eventGraph() asset.Graph {
	var (
		eventThen  = pinID(1)
		knotIn     = pinID(2)
		knotOut    = pinID(3)
		callExec   = pinID(4)
		callTarget = pinID(5)
		selfOut    = pinID(6)
	)
	return asset.Graph{
		Name: "EventGraph",
		Nodes: []asset.Node{
			{Ref: 1, Name: "K2Node_Event_0", Class: "/Script/BlueprintGraph.K2Node_Event", Extras: extras(
				fixturePin{id: eventThen, name: 1, direction: pins.Output, category: 3, links: []uuid.UUID{knotIn}},
			)},
			{Ref: 2, Name: "K2Node_Knot_0", Class: "/Script/BlueprintGraph.K2Node_Knot", Extras: extras(
				fixturePin{id: knotIn, name: 7, direction: pins.Input, category: 3, links: []uuid.UUID{eventThen}},
				fixturePin{id: knotOut, name: 8, direction: pins.Output, category: 3, links: []uuid.UUID{callExec}},
			)},
			{Ref: 3, Name: "K2Node_CallFunction_0", Class: "K2Node_CallFunction", Extras: extras(
				fixturePin{id: callExec, name: 2, direction: pins.Input, category: 3, links: []uuid.UUID{knotOut}},
				fixturePin{id: callTarget, name: 5, direction: pins.Input, category: 6, links: []uuid.UUID{selfOut}},
			)},
			{Ref: 4, Name: "K2Node_Self_0", Class: "K2Node_Self", Extras: extras(
				fixturePin{id: selfOut, name: 4, direction: pins.Output, category: 6, links: []uuid.UUID{callTarget}},
			)},
			// Claims two pins but is cut inside the first one.
			{Ref: 5, Name: "K2Node_Broken_0", Class: "K2Node_CallFunction", Extras: []byte{2, 0, 0, 0, 0}},
			{Ref: 6, Name: "EdGraphNode_Comment_0", Class: "EdGraphNode_Comment"},
		},
	}
}

func testOptions() config.Options {
	opts := config.Defaults()
	opts.Workers = 3
	return opts
}
