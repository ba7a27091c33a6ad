// Package pseudocode renders decoded Blueprint bytecode as readable
// statements. Rendering is total: an instruction it has no template for
// comes out as its opcode name in brackets.
package pseudocode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/kismet"
)

// BlockLookup maps a code offset to the block starting there.
// *cfg.Result implements it.
type BlockLookup interface {
	BlockAt(offset uint32) (int, bool)
}

// Renderer renders expressions. Both fields are optional: without Blocks
// jump targets print as raw offsets, without Resolver object references
// print as their package index label.
type Renderer struct {
	Blocks   BlockLookup
	Resolver asset.Resolver
}

// Render renders e with jump targets resolved through blocks.
func Render(e kismet.Expr, blocks BlockLookup) string {
	return Renderer{Blocks: blocks}.Render(e)
}

// Render returns the statement text for e. Debug markers, placeholders
// and the end-of-script sentinel render as "".
func (r Renderer) Render(e kismet.Expr) string {
	switch x := e.(type) {
	case nil:
		return ""

	// Variables.
	case *kismet.LocalVariable:
		return x.Variable.Name()
	case *kismet.InstanceVariable:
		return x.Variable.Name()
	case *kismet.LocalOutVariable:
		return x.Variable.Name()
	case *kismet.ClassSparseDataVariable:
		return x.Variable.Name()
	case *kismet.DefaultVariable:
		return "Default." + x.Variable.Name()

	// Control flow.
	case *kismet.Return:
		if v := r.Render(x.ReturnExpression); v != "" {
			return "return " + v
		}
		return "return"
	case *kismet.Jump:
		return "goto " + r.label(x.CodeOffset)
	case *kismet.JumpIfNot:
		return fmt.Sprintf("if (!%s) goto %s", r.Render(x.BooleanExpression), r.label(x.CodeOffset))
	case *kismet.ComputedJump:
		return "goto *(" + r.Render(x.CodeOffsetExpression) + ")"
	case *kismet.PushExecutionFlow:
		return "push_flow " + r.label(x.PushingAddress)
	case *kismet.PopExecutionFlow:
		return "pop_flow"
	case *kismet.PopExecutionFlowIfNot:
		return "if (!" + r.Render(x.BooleanExpression) + ") pop_flow"
	case *kismet.Assert:
		return "assert(" + r.Render(x.AssertExpression) + ")"
	case *kismet.Skip:
		return r.Render(x.SkipExpression)
	case *kismet.SwitchValue:
		return r.switchValue(x)

	case *kismet.Nothing, *kismet.NothingInt32, *kismet.EndOfScript,
		*kismet.Breakpoint, *kismet.Tracepoint, *kismet.WireTracepoint,
		*kismet.DeprecatedOp4A, *kismet.InstrumentationEvent:
		return ""

	// Assignment.
	case *kismet.Let:
		lhs := r.Render(x.Variable)
		if lhs == "" {
			lhs = x.Value.Name()
		}
		return lhs + " = " + r.Render(x.Expression)
	case *kismet.LetBool:
		return r.assign(x.Variable, x.Expression)
	case *kismet.LetObj:
		return r.assign(x.Variable, x.Expression)
	case *kismet.LetWeakObjPtr:
		return r.assign(x.Variable, x.Expression)
	case *kismet.LetDelegate:
		return r.assign(x.Variable, x.Expression)
	case *kismet.LetMulticastDelegate:
		return r.assign(x.Variable, x.Expression)
	case *kismet.LetValueOnPersistentFrame:
		return x.DestinationProperty.Name() + " = " + r.Render(x.AssignmentExpression)

	// Member access.
	case *kismet.Context:
		return r.Render(x.ObjectExpression) + "." + r.Render(x.ContextExpression)
	case *kismet.ClassContext:
		return r.Render(x.ObjectExpression) + "." + r.Render(x.ContextExpression)
	case *kismet.ContextFailSilent:
		return r.Render(x.ObjectExpression) + "?." + r.Render(x.ContextExpression)
	case *kismet.InterfaceContext:
		return r.Render(x.InterfaceValue)
	case *kismet.StructMemberContext:
		return r.Render(x.StructExpression) + "." + x.StructMemberExpression.Name()

	// Calls.
	case *kismet.VirtualFunction:
		return r.call(x.VirtualFunctionName, x.Parameters)
	case *kismet.LocalVirtualFunction:
		return r.call(x.VirtualFunctionName, x.Parameters)
	case *kismet.FinalFunction:
		return r.call(r.name(x.StackNode), x.Parameters)
	case *kismet.LocalFinalFunction:
		return r.call(r.name(x.StackNode), x.Parameters)
	case *kismet.CallMath:
		return r.call(r.name(x.StackNode), x.Parameters)
	case *kismet.CallMulticastDelegate:
		return r.call(r.Render(x.Delegate)+".Broadcast", x.Parameters)

	// Delegates.
	case *kismet.AddMulticastDelegate:
		return r.Render(x.Delegate) + " += " + r.Render(x.DelegateToAdd)
	case *kismet.RemoveMulticastDelegate:
		return r.Render(x.Delegate) + " -= " + r.Render(x.DelegateToAdd)
	case *kismet.ClearMulticastDelegate:
		return r.Render(x.DelegateToClear) + ".Clear()"
	case *kismet.BindDelegate:
		return fmt.Sprintf("%s.Bind(%s, %s)", r.Render(x.Delegate), r.Render(x.ObjectTerm), x.FunctionName)
	case *kismet.InstanceDelegate:
		return x.FunctionName

	// Casts.
	case *kismet.DynamicCast:
		return r.cast(r.name(x.ClassPtr), x.Target)
	case *kismet.MetaCast:
		return r.cast(r.name(x.ClassPtr), x.Target)
	case *kismet.ObjToInterfaceCast:
		return r.cast(r.name(x.ClassPtr), x.Target)
	case *kismet.CrossInterfaceCast:
		return r.cast(r.name(x.ClassPtr), x.Target)
	case *kismet.InterfaceToObjCast:
		return r.cast(r.name(x.ClassPtr), x.Target)
	case *kismet.Cast:
		return r.cast(x.ConversionType.TargetType(), x.Target)

	// Literals.
	case *kismet.IntConst:
		return strconv.FormatInt(int64(x.Value), 10)
	case *kismet.Int64Const:
		return strconv.FormatInt(x.Value, 10)
	case *kismet.UInt64Const:
		return strconv.FormatUint(x.Value, 10)
	case *kismet.FloatConst:
		return float32Text(x.Value)
	case *kismet.DoubleConst:
		return float64Text(x.Value)
	case *kismet.ByteConst:
		return strconv.Itoa(int(x.Value))
	case *kismet.IntConstByte:
		return strconv.Itoa(int(x.Value))
	case *kismet.StringConst:
		return strconv.Quote(x.Value)
	case *kismet.UnicodeStringConst:
		return strconv.Quote(x.Value)
	case *kismet.NameConst:
		return strconv.Quote(x.Value)
	case *kismet.TextConst:
		return textLiteral(x.Value)
	case *kismet.ObjectConst:
		return r.name(x.Value)
	case *kismet.SoftObjectConst:
		return r.Render(x.Value)
	case *kismet.FieldPathConst:
		return r.Render(x.Value)
	case *kismet.PropertyConst:
		return x.Property.Name()
	case *kismet.SkipOffsetConst:
		return r.label(x.Value)
	case *kismet.BitFieldConst:
		return strconv.Itoa(int(x.Value))
	case *kismet.VectorConst:
		return fmt.Sprintf("Vector(%s, %s, %s)", float64Text(x.Value.X), float64Text(x.Value.Y), float64Text(x.Value.Z))
	case *kismet.Vector3fConst:
		return fmt.Sprintf("Vector3f(%s, %s, %s)", float32Text(x.Value.X), float32Text(x.Value.Y), float32Text(x.Value.Z))
	case *kismet.RotationConst:
		return fmt.Sprintf("Rotator(%s, %s, %s)", float64Text(x.Value.Pitch), float64Text(x.Value.Yaw), float64Text(x.Value.Roll))
	case *kismet.TransformConst:
		q, t, s := x.Rotation, x.Translation, x.Scale
		return fmt.Sprintf("Transform(Quat(%s, %s, %s, %s), Vector(%s, %s, %s), Vector(%s, %s, %s))",
			float64Text(q.X), float64Text(q.Y), float64Text(q.Z), float64Text(q.W),
			float64Text(t.X), float64Text(t.Y), float64Text(t.Z),
			float64Text(s.X), float64Text(s.Y), float64Text(s.Z))
	case *kismet.StructConst:
		return r.call(r.name(x.Struct), x.Value)
	case *kismet.ArrayConst:
		return "[" + r.list(x.Elements) + "]"
	case *kismet.SetConst:
		return "{" + r.list(x.Elements) + "}"
	case *kismet.MapConst:
		return "{" + r.pairs(x.Elements) + "}"

	case *kismet.IntZero:
		return "0"
	case *kismet.IntOne:
		return "1"
	case *kismet.True:
		return "true"
	case *kismet.False:
		return "false"
	case *kismet.NoObject, *kismet.NoInterface:
		return "null"
	case *kismet.Self:
		return "self"

	// Containers.
	case *kismet.SetArray:
		return r.Render(x.AssigningProperty) + " = [" + r.list(x.Elements) + "]"
	case *kismet.SetSet:
		return r.Render(x.SetProperty) + " = {" + r.list(x.Elements) + "}"
	case *kismet.SetMap:
		return r.Render(x.MapProperty) + " = {" + r.pairs(x.Elements) + "}"
	case *kismet.ArrayGetByRef:
		return r.Render(x.ArrayVariable) + "[" + r.Render(x.ArrayIndex) + "]"

	default:
		return "[" + e.Token().String() + "]"
	}
}

func (r Renderer) label(offset uint32) string {
	if r.Blocks != nil {
		if id, ok := r.Blocks.BlockAt(offset); ok {
			return BlockLabel(id)
		}
	}
	return "@" + strconv.FormatUint(uint64(offset), 10)
}

// BlockLabel is the label printed for block id.
func BlockLabel(id int) string {
	return "block_" + strconv.Itoa(id)
}

func (r Renderer) name(ref asset.PackageIndex) string {
	return asset.ResolveName(r.Resolver, ref)
}

func (r Renderer) assign(lhs, rhs kismet.Expr) string {
	return r.Render(lhs) + " = " + r.Render(rhs)
}

func (r Renderer) call(target string, args []kismet.Expr) string {
	return target + "(" + r.list(args) + ")"
}

func (r Renderer) cast(target string, e kismet.Expr) string {
	return "Cast<" + target + ">(" + r.Render(e) + ")"
}

func (r Renderer) list(exprs []kismet.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = r.Render(e)
	}
	return strings.Join(parts, ", ")
}

// pairs renders interleaved key/value elements. A trailing key without
// a value is rendered alone.
func (r Renderer) pairs(exprs []kismet.Expr) string {
	var parts []string
	for i := 0; i < len(exprs); i += 2 {
		if i+1 == len(exprs) {
			parts = append(parts, r.Render(exprs[i]))
			break
		}
		parts = append(parts, r.Render(exprs[i])+": "+r.Render(exprs[i+1]))
	}
	return strings.Join(parts, ", ")
}

func (r Renderer) switchValue(x *kismet.SwitchValue) string {
	var b strings.Builder
	b.WriteString("switch (")
	b.WriteString(r.Render(x.IndexTerm))
	b.WriteString(") { ")
	for _, c := range x.Cases {
		fmt.Fprintf(&b, "case %s: %s; ", r.Render(c.CaseIndexValueTerm), r.Render(c.CaseTerm))
	}
	b.WriteString("default: ")
	b.WriteString(r.Render(x.DefaultTerm))
	b.WriteString(" }")
	return b.String()
}

func float32Text(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func float64Text(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func textLiteral(t kismet.ScriptText) string {
	switch t.Kind {
	case kismet.TextEmpty:
		return `""`
	case kismet.TextStringTableEntry:
		return fmt.Sprintf("LOCTABLE(%q, %q)", t.TableID, t.Key)
	default:
		return strconv.Quote(t.Source)
	}
}
