package pseudocode

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/cfg"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/kismet"
)

// offsets is a BlockLookup over a fixed table.
type offsets map[uint32]int

func (o offsets) BlockAt(off uint32) (int, bool) {
	id, ok := o[off]
	return id, ok
}

func local(name string) kismet.Expr {
	return &kismet.LocalVariable{Variable: kismet.Prop(name)}
}

func instance(name string) kismet.Expr {
	return &kismet.InstanceVariable{Variable: kismet.Prop(name)}
}

func TestRender(t *testing.T) {
	resolver := asset.MapResolver{
		-1: "PrintString",
		-2: "BP_Door_C",
		-3: "Vector2D",
	}
	r := Renderer{Blocks: offsets{40: 3}, Resolver: resolver}

	tests := []struct {
		name     string
		expr     kismet.Expr
		expected string
	}{
		{"int", &kismet.IntConst{Value: 42}, "42"},
		{"negative int64", &kismet.Int64Const{Value: -7}, "-7"},
		{"uint64", &kismet.UInt64Const{Value: 18446744073709551615}, "18446744073709551615"},
		{"float", &kismet.FloatConst{Value: 0.1}, "0.1"},
		{"double", &kismet.DoubleConst{Value: 1e21}, "1e+21"},
		{"byte", &kismet.ByteConst{Value: 255}, "255"},
		{"true", &kismet.True{}, "true"},
		{"false", &kismet.False{}, "false"},
		{"zero", &kismet.IntZero{}, "0"},
		{"one", &kismet.IntOne{}, "1"},
		{"self", &kismet.Self{}, "self"},
		{"no object", &kismet.NoObject{}, "null"},
		{"string", &kismet.StringConst{Value: `say "hi"`}, `"say \"hi\""`},
		{"name", &kismet.NameConst{Value: "Fire"}, `"Fire"`},
		{"text", &kismet.TextConst{Value: kismet.ScriptText{Kind: kismet.TextLocalized, Source: "Open"}}, `"Open"`},
		{"string table text", &kismet.TextConst{Value: kismet.ScriptText{Kind: kismet.TextStringTableEntry, TableID: "UI", Key: "Open"}}, `LOCTABLE("UI", "Open")`},
		{"empty text", &kismet.TextConst{}, `""`},
		{"object", &kismet.ObjectConst{Value: -2}, "BP_Door_C"},
		{"vector", &kismet.VectorConst{Value: kismet.Vector{X: 1, Y: 0.5, Z: -2}}, "Vector(1, 0.5, -2)"},
		{"rotator", &kismet.RotationConst{Value: kismet.Rotator{Yaw: 90}}, "Rotator(0, 90, 0)"},

		{"local", local("Count"), "Count"},
		{"default", &kismet.DefaultVariable{Variable: kismet.Prop("Speed")}, "Default.Speed"},

		{"return value", &kismet.Return{ReturnExpression: local("Result")}, "return Result"},
		{"return nothing", &kismet.Return{ReturnExpression: &kismet.Nothing{}}, "return"},
		{"jump resolved", &kismet.Jump{CodeOffset: 40}, "goto block_3"},
		{"jump unresolved", &kismet.Jump{CodeOffset: 77}, "goto @77"},
		{"jump if not", &kismet.JumpIfNot{CodeOffset: 40, BooleanExpression: instance("bOpen")}, "if (!bOpen) goto block_3"},
		{"computed jump", &kismet.ComputedJump{CodeOffsetExpression: local("Target")}, "goto *(Target)"},
		{"push flow", &kismet.PushExecutionFlow{PushingAddress: 40}, "push_flow block_3"},
		{"pop flow", &kismet.PopExecutionFlow{}, "pop_flow"},
		{"pop flow if not", &kismet.PopExecutionFlowIfNot{BooleanExpression: local("bDone")}, "if (!bDone) pop_flow"},
		{"assert", &kismet.Assert{AssertExpression: &kismet.True{}}, "assert(true)"},

		{"let", &kismet.Let{Variable: local("X"), Expression: &kismet.IntConst{Value: 1}}, "X = 1"},
		{"let without variable", &kismet.Let{Value: kismet.Prop("Y"), Expression: &kismet.IntOne{}}, "Y = 1"},
		{"let bool", &kismet.LetBool{Variable: instance("bOpen"), Expression: &kismet.False{}}, "bOpen = false"},
		{"persistent frame", &kismet.LetValueOnPersistentFrame{DestinationProperty: kismet.Prop("Saved"), AssignmentExpression: local("V")}, "Saved = V"},

		{
			"member call",
			&kismet.Context{
				ObjectExpression:  instance("Door"),
				ContextExpression: &kismet.VirtualFunction{VirtualFunctionName: "Open", Parameters: []kismet.Expr{&kismet.True{}}},
			},
			"Door.Open(true)",
		},
		{
			"fail silent member",
			&kismet.ContextFailSilent{ObjectExpression: instance("Door"), ContextExpression: instance("Angle")},
			"Door?.Angle",
		},
		{
			"struct member",
			&kismet.StructMemberContext{StructMemberExpression: kismet.Prop("X"), StructExpression: local("Location")},
			"Location.X",
		},
		{
			"final function",
			&kismet.FinalFunction{StackNode: -1, Parameters: []kismet.Expr{self(), &kismet.StringConst{Value: "hi"}}},
			`PrintString(self, "hi")`,
		},
		{"unresolved function", &kismet.CallMath{StackNode: -9}, "import#8()"},
		{"struct const", &kismet.StructConst{Struct: -3, Value: []kismet.Expr{&kismet.IntZero{}, &kismet.IntOne{}}}, "Vector2D(0, 1)"},
		{"broadcast", &kismet.CallMulticastDelegate{Delegate: instance("OnOpened"), Parameters: []kismet.Expr{local("Who")}}, "OnOpened.Broadcast(Who)"},
		{"add delegate", &kismet.AddMulticastDelegate{Delegate: instance("OnOpened"), DelegateToAdd: &kismet.InstanceDelegate{FunctionName: "Handle"}}, "OnOpened += Handle"},
		{"clear delegate", &kismet.ClearMulticastDelegate{DelegateToClear: instance("OnOpened")}, "OnOpened.Clear()"},
		{"bind delegate", &kismet.BindDelegate{FunctionName: "Handle", Delegate: local("D"), ObjectTerm: self()}, "D.Bind(self, Handle)"},

		{"dynamic cast", &kismet.DynamicCast{ClassPtr: -2, Target: local("Actor")}, "Cast<BP_Door_C>(Actor)"},
		{"primitive cast", &kismet.Cast{ConversionType: kismet.CastObjectToBool, Target: local("Actor")}, "Cast<bool>(Actor)"},

		{"array", &kismet.ArrayConst{Elements: []kismet.Expr{&kismet.IntOne{}, &kismet.IntZero{}}}, "[1, 0]"},
		{"empty array", &kismet.ArrayConst{}, "[]"},
		{"map", &kismet.MapConst{Elements: []kismet.Expr{&kismet.NameConst{Value: "a"}, &kismet.IntOne{}}}, `{"a": 1}`},
		{"set array", &kismet.SetArray{AssigningProperty: local("Items"), Elements: []kismet.Expr{&kismet.IntOne{}}}, "Items = [1]"},
		{"array get", &kismet.ArrayGetByRef{ArrayVariable: local("Items"), ArrayIndex: &kismet.IntZero{}}, "Items[0]"},

		{
			"switch",
			&kismet.SwitchValue{
				IndexTerm: local("Mode"),
				Cases: []kismet.SwitchCase{
					{CaseIndexValueTerm: &kismet.IntZero{}, CaseTerm: &kismet.StringConst{Value: "a"}},
					{CaseIndexValueTerm: &kismet.IntOne{}, CaseTerm: &kismet.StringConst{Value: "b"}},
				},
				DefaultTerm: &kismet.StringConst{Value: "c"},
			},
			`switch (Mode) { case 0: "a"; case 1: "b"; default: "c" }`,
		},

		{"nothing", &kismet.Nothing{}, ""},
		{"end of script", &kismet.EndOfScript{}, ""},
		{"breakpoint", &kismet.Breakpoint{}, ""},
		{"wire tracepoint", &kismet.WireTracepoint{}, ""},
		{"instrumentation", &kismet.InstrumentationEvent{EventType: 2}, ""},
		{"nil", nil, ""},

		{"unknown opcode", &kismet.Unknown{Tag: 0xF0}, "[EX_0xF0]"},
		{"unmodelled opcode", &kismet.Unknown{Tag: kismet.TokenEndParmValue}, "[EX_EndParmValue]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Render(tt.expr))
		})
	}
}

func self() kismet.Expr { return &kismet.Self{} }

func TestRenderWithoutBlocks(t *testing.T) {
	assert.Equal(t, "goto @40", Render(&kismet.Jump{CodeOffset: 40}, nil))
	assert.Equal(t, "Cast<export#0>(A)", Renderer{}.Render(&kismet.MetaCast{ClassPtr: 1, Target: local("A")}))
}

func TestRenderDeepNesting(t *testing.T) {
	var e kismet.Expr = &kismet.IntConst{Value: 42}
	for i := 0; i < 2000; i++ {
		e = &kismet.Context{ObjectExpression: self(), ContextExpression: e}
	}

	out := Render(e, nil)
	assert.True(t, strings.HasPrefix(out, "self.self."))
	assert.True(t, strings.HasSuffix(out, ".42"))
	assert.Equal(t, 2000, strings.Count(out, "self"))
}

// TestRenderConstantsIgnoreContext checks that a literal renders as itself
// wherever it sits in a tree.
func TestRenderConstantsIgnoreContext(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("int literal renders as its decimal text", prop.ForAll(
		func(v int32, depth int) bool {
			var inner kismet.Expr = &kismet.IntConst{Value: v}
			want := Render(inner, nil)
			args := []kismet.Expr{inner}
			var e kismet.Expr = inner
			for i := 0; i < depth; i++ {
				e = &kismet.VirtualFunction{VirtualFunctionName: "F", Parameters: args}
				args = []kismet.Expr{e, &kismet.True{}}
			}
			return strings.Contains(Render(e, nil), want) && Render(inner, offsets{0: 1}) == want
		},
		gen.Int32(),
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}

func TestListing(t *testing.T) {
	exprs := []kismet.Expr{
		&kismet.JumpIfNot{CodeOffset: 40, BooleanExpression: local("bOpen")},
		&kismet.Let{Variable: local("X"), Expression: &kismet.IntConst{Value: 1}},
		&kismet.Jump{CodeOffset: 10},
		&kismet.WireTracepoint{},
		&kismet.Return{ReturnExpression: &kismet.Nothing{}},
	}
	result := cfg.Build(exprs, func(kismet.Expr) int { return 10 })

	lines := Listing(exprs, result, Renderer{})
	require.NotEmpty(t, lines)

	expected := strings.Join([]string{
		"block_0:",
		"    if (!bOpen) goto block_3",
		"block_1: // loop",
		"    X = 1",
		"    goto block_1",
		"block_2:",
		"block_3:",
		"    return",
		"",
	}, "\n")
	assert.Equal(t, expected, Format(lines))

	assert.True(t, lines[0].IsLabel())
	assert.Equal(t, 1, lines[3].Index)
	assert.Equal(t, uint32(10), lines[3].Offset)
	assert.Equal(t, 1, lines[3].Block)
}

func TestListingEmpty(t *testing.T) {
	assert.Nil(t, Listing(nil, cfg.Build(nil, nil), Renderer{}))
	assert.Nil(t, Listing(nil, nil, Renderer{}))
}
