// Package kismet models decoded Blueprint bytecode: a closed set of
// expression variants keyed by their opcode Token. Consumers switch over
// the concrete types; an expression outside the set decodes to *Unknown.
package kismet

import (
	"strings"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
)

// Expr is one decoded instruction or sub-expression. The set of
// implementations is closed to this package.
type Expr interface {
	Token() Token
	expr()
}

// PropertyRef is a serialized property pointer: the field path from the
// owning struct down to the property.
type PropertyRef struct {
	Path  []string
	Owner asset.PackageIndex
}

// Name returns the innermost path element.
func (p PropertyRef) Name() string {
	if len(p.Path) == 0 {
		return "None"
	}
	return p.Path[len(p.Path)-1]
}

// String joins the path with dots.
func (p PropertyRef) String() string {
	if len(p.Path) == 0 {
		return "None"
	}
	return strings.Join(p.Path, ".")
}

// Prop is shorthand for a single-element PropertyRef.
func Prop(name string) PropertyRef { return PropertyRef{Path: []string{name}} }

type Vector struct{ X, Y, Z float64 }

type Vector3f struct{ X, Y, Z float32 }

type Rotator struct{ Pitch, Yaw, Roll float64 }

type Quat struct{ X, Y, Z, W float64 }

// TextLiteralKind selects the payload of an EX_TextConst.
type TextLiteralKind uint8

const (
	TextEmpty TextLiteralKind = iota
	TextLocalized
	TextInvariant
	TextLiteralString
	TextStringTableEntry
)

// ScriptText is the payload of an EX_TextConst.
type ScriptText struct {
	Kind      TextLiteralKind
	Source    string
	Key       string
	Namespace string
	Table     asset.PackageIndex
	TableID   string
}

// Variables.

type LocalVariable struct{ Variable PropertyRef }
type InstanceVariable struct{ Variable PropertyRef }
type DefaultVariable struct{ Variable PropertyRef }
type LocalOutVariable struct{ Variable PropertyRef }
type ClassSparseDataVariable struct{ Variable PropertyRef }

// Control flow.

type Return struct{ ReturnExpression Expr }

type Jump struct{ CodeOffset uint32 }

type JumpIfNot struct {
	CodeOffset        uint32
	BooleanExpression Expr
}

type ComputedJump struct{ CodeOffsetExpression Expr }

type PushExecutionFlow struct{ PushingAddress uint32 }

type PopExecutionFlow struct{}

type PopExecutionFlowIfNot struct{ BooleanExpression Expr }

type Assert struct {
	LineNumber       uint16
	DebugMode        bool
	AssertExpression Expr
}

// Skip wraps an expression the VM may skip over; CodeOffset is the
// address just past it.
type Skip struct {
	CodeOffset     uint32
	SkipExpression Expr
}

type SwitchCase struct {
	CaseIndexValueTerm Expr
	NextOffset         uint32
	CaseTerm           Expr
}

type SwitchValue struct {
	IndexTerm     Expr
	EndGotoOffset uint32
	Cases         []SwitchCase
	DefaultTerm   Expr
}

// Markers and placeholders.

type Nothing struct{}
type NothingInt32 struct{ Value int32 }
type EndOfScript struct{}
type Breakpoint struct{}
type Tracepoint struct{}
type WireTracepoint struct{}
type DeprecatedOp4A struct{}

type InstrumentationEvent struct {
	EventType uint8
	EventName string
}

// Assignment.

type Let struct {
	Value      PropertyRef
	Variable   Expr
	Expression Expr
}

type LetBool struct{ Variable, Expression Expr }
type LetObj struct{ Variable, Expression Expr }
type LetWeakObjPtr struct{ Variable, Expression Expr }
type LetDelegate struct{ Variable, Expression Expr }
type LetMulticastDelegate struct{ Variable, Expression Expr }

type LetValueOnPersistentFrame struct {
	DestinationProperty  PropertyRef
	AssignmentExpression Expr
}

// Context switches evaluate ContextExpression against ObjectExpression.

type Context struct {
	ObjectExpression  Expr
	Offset            uint32
	RValuePointer     PropertyRef
	ContextExpression Expr
}

type ContextFailSilent struct {
	ObjectExpression  Expr
	Offset            uint32
	RValuePointer     PropertyRef
	ContextExpression Expr
}

type ClassContext struct {
	ObjectExpression  Expr
	Offset            uint32
	RValuePointer     PropertyRef
	ContextExpression Expr
}

type InterfaceContext struct{ InterfaceValue Expr }

type StructMemberContext struct {
	StructMemberExpression PropertyRef
	StructExpression       Expr
}

// Calls.

type VirtualFunction struct {
	VirtualFunctionName string
	Parameters          []Expr
}

type LocalVirtualFunction struct {
	VirtualFunctionName string
	Parameters          []Expr
}

type FinalFunction struct {
	StackNode  asset.PackageIndex
	Parameters []Expr
}

type LocalFinalFunction struct {
	StackNode  asset.PackageIndex
	Parameters []Expr
}

type CallMath struct {
	StackNode  asset.PackageIndex
	Parameters []Expr
}

type CallMulticastDelegate struct {
	StackNode  asset.PackageIndex
	Delegate   Expr
	Parameters []Expr
}

// Delegates.

type AddMulticastDelegate struct{ Delegate, DelegateToAdd Expr }
type RemoveMulticastDelegate struct{ Delegate, DelegateToAdd Expr }
type ClearMulticastDelegate struct{ DelegateToClear Expr }

type BindDelegate struct {
	FunctionName string
	Delegate     Expr
	ObjectTerm   Expr
}

type InstanceDelegate struct{ FunctionName string }

// Casts.

type DynamicCast struct {
	ClassPtr asset.PackageIndex
	Target   Expr
}

type MetaCast struct {
	ClassPtr asset.PackageIndex
	Target   Expr
}

type ObjToInterfaceCast struct {
	ClassPtr asset.PackageIndex
	Target   Expr
}

type CrossInterfaceCast struct {
	ClassPtr asset.PackageIndex
	Target   Expr
}

type InterfaceToObjCast struct {
	ClassPtr asset.PackageIndex
	Target   Expr
}

type Cast struct {
	ConversionType CastKind
	Target         Expr
}

// Constants.

type IntConst struct{ Value int32 }
type Int64Const struct{ Value int64 }
type UInt64Const struct{ Value uint64 }
type FloatConst struct{ Value float32 }
type DoubleConst struct{ Value float64 }
type ByteConst struct{ Value uint8 }
type IntConstByte struct{ Value uint8 }
type StringConst struct{ Value string }
type UnicodeStringConst struct{ Value string }
type NameConst struct{ Value string }
type TextConst struct{ Value ScriptText }
type ObjectConst struct{ Value asset.PackageIndex }
type SoftObjectConst struct{ Value Expr }
type FieldPathConst struct{ Value Expr }
type VectorConst struct{ Value Vector }
type Vector3fConst struct{ Value Vector3f }
type RotationConst struct{ Value Rotator }
type PropertyConst struct{ Property PropertyRef }
type SkipOffsetConst struct{ Value uint32 }

type TransformConst struct {
	Rotation    Quat
	Translation Vector
	Scale       Vector
}

type BitFieldConst struct {
	InnerProperty PropertyRef
	Value         uint8
}

type StructConst struct {
	Struct     asset.PackageIndex
	StructSize int32
	Value      []Expr
}

type ArrayConst struct {
	InnerProperty PropertyRef
	Elements      []Expr
}

type SetConst struct {
	InnerProperty PropertyRef
	Elements      []Expr
}

// MapConst stores keys and values interleaved: k0, v0, k1, v1, ...
type MapConst struct {
	KeyProperty   PropertyRef
	ValueProperty PropertyRef
	Elements      []Expr
}

type IntZero struct{}
type IntOne struct{}
type True struct{}
type False struct{}
type NoObject struct{}
type NoInterface struct{}
type Self struct{}

// Containers.

type SetArray struct {
	AssigningProperty Expr
	Elements          []Expr
}

type SetSet struct {
	SetProperty Expr
	Elements    []Expr
}

// SetMap stores keys and values interleaved like MapConst.
type SetMap struct {
	MapProperty Expr
	Elements    []Expr
}

type ArrayGetByRef struct{ ArrayVariable, ArrayIndex Expr }

// Unknown stands in for an opcode the decoder could not model.
type Unknown struct{ Tag Token }

func (*LocalVariable) Token() Token             { return TokenLocalVariable }
func (*InstanceVariable) Token() Token          { return TokenInstanceVariable }
func (*DefaultVariable) Token() Token           { return TokenDefaultVariable }
func (*LocalOutVariable) Token() Token          { return TokenLocalOutVariable }
func (*ClassSparseDataVariable) Token() Token   { return TokenClassSparseDataVariable }
func (*Return) Token() Token                    { return TokenReturn }
func (*Jump) Token() Token                      { return TokenJump }
func (*JumpIfNot) Token() Token                 { return TokenJumpIfNot }
func (*ComputedJump) Token() Token              { return TokenComputedJump }
func (*PushExecutionFlow) Token() Token         { return TokenPushExecutionFlow }
func (*PopExecutionFlow) Token() Token          { return TokenPopExecutionFlow }
func (*PopExecutionFlowIfNot) Token() Token     { return TokenPopExecutionFlowIfNot }
func (*Assert) Token() Token                    { return TokenAssert }
func (*Skip) Token() Token                      { return TokenSkip }
func (*SwitchValue) Token() Token               { return TokenSwitchValue }
func (*Nothing) Token() Token                   { return TokenNothing }
func (*NothingInt32) Token() Token              { return TokenNothingInt32 }
func (*EndOfScript) Token() Token               { return TokenEndOfScript }
func (*Breakpoint) Token() Token                { return TokenBreakpoint }
func (*Tracepoint) Token() Token                { return TokenTracepoint }
func (*WireTracepoint) Token() Token            { return TokenWireTracepoint }
func (*DeprecatedOp4A) Token() Token            { return TokenDeprecatedOp4A }
func (*InstrumentationEvent) Token() Token      { return TokenInstrumentationEvent }
func (*Let) Token() Token                       { return TokenLet }
func (*LetBool) Token() Token                   { return TokenLetBool }
func (*LetObj) Token() Token                    { return TokenLetObj }
func (*LetWeakObjPtr) Token() Token             { return TokenLetWeakObjPtr }
func (*LetDelegate) Token() Token               { return TokenLetDelegate }
func (*LetMulticastDelegate) Token() Token      { return TokenLetMulticastDelegate }
func (*LetValueOnPersistentFrame) Token() Token { return TokenLetValueOnPersistentFrame }
func (*Context) Token() Token                   { return TokenContext }
func (*ContextFailSilent) Token() Token         { return TokenContextFailSilent }
func (*ClassContext) Token() Token              { return TokenClassContext }
func (*InterfaceContext) Token() Token          { return TokenInterfaceContext }
func (*StructMemberContext) Token() Token       { return TokenStructMemberContext }
func (*VirtualFunction) Token() Token           { return TokenVirtualFunction }
func (*LocalVirtualFunction) Token() Token      { return TokenLocalVirtualFunction }
func (*FinalFunction) Token() Token             { return TokenFinalFunction }
func (*LocalFinalFunction) Token() Token        { return TokenLocalFinalFunction }
func (*CallMath) Token() Token                  { return TokenCallMath }
func (*CallMulticastDelegate) Token() Token     { return TokenCallMulticastDelegate }
func (*AddMulticastDelegate) Token() Token      { return TokenAddMulticastDelegate }
func (*RemoveMulticastDelegate) Token() Token   { return TokenRemoveMulticastDelegate }
func (*ClearMulticastDelegate) Token() Token    { return TokenClearMulticastDelegate }
func (*BindDelegate) Token() Token              { return TokenBindDelegate }
func (*InstanceDelegate) Token() Token          { return TokenInstanceDelegate }
func (*DynamicCast) Token() Token               { return TokenDynamicCast }
func (*MetaCast) Token() Token                  { return TokenMetaCast }
func (*ObjToInterfaceCast) Token() Token        { return TokenObjToInterfaceCast }
func (*CrossInterfaceCast) Token() Token        { return TokenCrossInterfaceCast }
func (*InterfaceToObjCast) Token() Token        { return TokenInterfaceToObjCast }
func (*Cast) Token() Token                      { return TokenCast }
func (*IntConst) Token() Token                  { return TokenIntConst }
func (*Int64Const) Token() Token                { return TokenInt64Const }
func (*UInt64Const) Token() Token               { return TokenUInt64Const }
func (*FloatConst) Token() Token                { return TokenFloatConst }
func (*DoubleConst) Token() Token               { return TokenDoubleConst }
func (*ByteConst) Token() Token                 { return TokenByteConst }
func (*IntConstByte) Token() Token              { return TokenIntConstByte }
func (*StringConst) Token() Token               { return TokenStringConst }
func (*UnicodeStringConst) Token() Token        { return TokenUnicodeStringConst }
func (*NameConst) Token() Token                 { return TokenNameConst }
func (*TextConst) Token() Token                 { return TokenTextConst }
func (*ObjectConst) Token() Token               { return TokenObjectConst }
func (*SoftObjectConst) Token() Token           { return TokenSoftObjectConst }
func (*FieldPathConst) Token() Token            { return TokenFieldPathConst }
func (*VectorConst) Token() Token               { return TokenVectorConst }
func (*Vector3fConst) Token() Token             { return TokenVector3fConst }
func (*RotationConst) Token() Token             { return TokenRotationConst }
func (*TransformConst) Token() Token            { return TokenTransformConst }
func (*PropertyConst) Token() Token             { return TokenPropertyConst }
func (*SkipOffsetConst) Token() Token           { return TokenSkipOffsetConst }
func (*BitFieldConst) Token() Token             { return TokenBitFieldConst }
func (*StructConst) Token() Token               { return TokenStructConst }
func (*ArrayConst) Token() Token                { return TokenArrayConst }
func (*SetConst) Token() Token                  { return TokenSetConst }
func (*MapConst) Token() Token                  { return TokenMapConst }
func (*IntZero) Token() Token                   { return TokenIntZero }
func (*IntOne) Token() Token                    { return TokenIntOne }
func (*True) Token() Token                      { return TokenTrue }
func (*False) Token() Token                     { return TokenFalse }
func (*NoObject) Token() Token                  { return TokenNoObject }
func (*NoInterface) Token() Token               { return TokenNoInterface }
func (*Self) Token() Token                      { return TokenSelf }
func (*SetArray) Token() Token                  { return TokenSetArray }
func (*SetSet) Token() Token                    { return TokenSetSet }
func (*SetMap) Token() Token                    { return TokenSetMap }
func (*ArrayGetByRef) Token() Token             { return TokenArrayGetByRef }
func (u *Unknown) Token() Token                 { return u.Tag }

func (*LocalVariable) expr()             {}
func (*InstanceVariable) expr()          {}
func (*DefaultVariable) expr()           {}
func (*LocalOutVariable) expr()          {}
func (*ClassSparseDataVariable) expr()   {}
func (*Return) expr()                    {}
func (*Jump) expr()                      {}
func (*JumpIfNot) expr()                 {}
func (*ComputedJump) expr()              {}
func (*PushExecutionFlow) expr()         {}
func (*PopExecutionFlow) expr()          {}
func (*PopExecutionFlowIfNot) expr()     {}
func (*Assert) expr()                    {}
func (*Skip) expr()                      {}
func (*SwitchValue) expr()               {}
func (*Nothing) expr()                   {}
func (*NothingInt32) expr()              {}
func (*EndOfScript) expr()               {}
func (*Breakpoint) expr()                {}
func (*Tracepoint) expr()                {}
func (*WireTracepoint) expr()            {}
func (*DeprecatedOp4A) expr()            {}
func (*InstrumentationEvent) expr()      {}
func (*Let) expr()                       {}
func (*LetBool) expr()                   {}
func (*LetObj) expr()                    {}
func (*LetWeakObjPtr) expr()             {}
func (*LetDelegate) expr()               {}
func (*LetMulticastDelegate) expr()      {}
func (*LetValueOnPersistentFrame) expr() {}
func (*Context) expr()                   {}
func (*ContextFailSilent) expr()         {}
func (*ClassContext) expr()              {}
func (*InterfaceContext) expr()          {}
func (*StructMemberContext) expr()       {}
func (*VirtualFunction) expr()           {}
func (*LocalVirtualFunction) expr()      {}
func (*FinalFunction) expr()             {}
func (*LocalFinalFunction) expr()        {}
func (*CallMath) expr()                  {}
func (*CallMulticastDelegate) expr()     {}
func (*AddMulticastDelegate) expr()      {}
func (*RemoveMulticastDelegate) expr()   {}
func (*ClearMulticastDelegate) expr()    {}
func (*BindDelegate) expr()              {}
func (*InstanceDelegate) expr()          {}
func (*DynamicCast) expr()               {}
func (*MetaCast) expr()                  {}
func (*ObjToInterfaceCast) expr()        {}
func (*CrossInterfaceCast) expr()        {}
func (*InterfaceToObjCast) expr()        {}
func (*Cast) expr()                      {}
func (*IntConst) expr()                  {}
func (*Int64Const) expr()                {}
func (*UInt64Const) expr()               {}
func (*FloatConst) expr()                {}
func (*DoubleConst) expr()               {}
func (*ByteConst) expr()                 {}
func (*IntConstByte) expr()              {}
func (*StringConst) expr()               {}
func (*UnicodeStringConst) expr()        {}
func (*NameConst) expr()                 {}
func (*TextConst) expr()                 {}
func (*ObjectConst) expr()               {}
func (*SoftObjectConst) expr()           {}
func (*FieldPathConst) expr()            {}
func (*VectorConst) expr()               {}
func (*Vector3fConst) expr()             {}
func (*RotationConst) expr()             {}
func (*TransformConst) expr()            {}
func (*PropertyConst) expr()             {}
func (*SkipOffsetConst) expr()           {}
func (*BitFieldConst) expr()             {}
func (*StructConst) expr()               {}
func (*ArrayConst) expr()                {}
func (*SetConst) expr()                  {}
func (*MapConst) expr()                  {}
func (*IntZero) expr()                   {}
func (*IntOne) expr()                    {}
func (*True) expr()                      {}
func (*False) expr()                     {}
func (*NoObject) expr()                  {}
func (*NoInterface) expr()               {}
func (*Self) expr()                      {}
func (*SetArray) expr()                  {}
func (*SetSet) expr()                    {}
func (*SetMap) expr()                    {}
func (*ArrayGetByRef) expr()             {}
func (*Unknown) expr()                   {}
