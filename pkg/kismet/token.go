package kismet

import "fmt"

// Token is the one-byte opcode that opens every serialized expression.
type Token uint8

const (
	TokenLocalVariable             Token = 0x00
	TokenInstanceVariable          Token = 0x01
	TokenDefaultVariable           Token = 0x02
	TokenReturn                    Token = 0x04
	TokenJump                      Token = 0x06
	TokenJumpIfNot                 Token = 0x07
	TokenAssert                    Token = 0x09
	TokenNothing                   Token = 0x0B
	TokenNothingInt32              Token = 0x0C
	TokenLet                       Token = 0x0F
	TokenBitFieldConst             Token = 0x11
	TokenClassContext              Token = 0x12
	TokenMetaCast                  Token = 0x13
	TokenLetBool                   Token = 0x14
	TokenEndParmValue              Token = 0x15
	TokenEndFunctionParms          Token = 0x16
	TokenSelf                      Token = 0x17
	TokenSkip                      Token = 0x18
	TokenContext                   Token = 0x19
	TokenContextFailSilent         Token = 0x1A
	TokenVirtualFunction           Token = 0x1B
	TokenFinalFunction             Token = 0x1C
	TokenIntConst                  Token = 0x1D
	TokenFloatConst                Token = 0x1E
	TokenStringConst               Token = 0x1F
	TokenObjectConst               Token = 0x20
	TokenNameConst                 Token = 0x21
	TokenRotationConst             Token = 0x22
	TokenVectorConst               Token = 0x23
	TokenByteConst                 Token = 0x24
	TokenIntZero                   Token = 0x25
	TokenIntOne                    Token = 0x26
	TokenTrue                      Token = 0x27
	TokenFalse                     Token = 0x28
	TokenTextConst                 Token = 0x29
	TokenNoObject                  Token = 0x2A
	TokenTransformConst            Token = 0x2B
	TokenIntConstByte              Token = 0x2C
	TokenNoInterface               Token = 0x2D
	TokenDynamicCast               Token = 0x2E
	TokenStructConst               Token = 0x2F
	TokenEndStructConst            Token = 0x30
	TokenSetArray                  Token = 0x31
	TokenEndArray                  Token = 0x32
	TokenPropertyConst             Token = 0x33
	TokenUnicodeStringConst        Token = 0x34
	TokenInt64Const                Token = 0x35
	TokenUInt64Const               Token = 0x36
	TokenDoubleConst               Token = 0x37
	TokenCast                      Token = 0x38
	TokenSetSet                    Token = 0x39
	TokenEndSet                    Token = 0x3A
	TokenSetMap                    Token = 0x3B
	TokenEndMap                    Token = 0x3C
	TokenSetConst                  Token = 0x3D
	TokenEndSetConst               Token = 0x3E
	TokenMapConst                  Token = 0x3F
	TokenEndMapConst               Token = 0x40
	TokenVector3fConst             Token = 0x41
	TokenStructMemberContext       Token = 0x42
	TokenLetMulticastDelegate      Token = 0x43
	TokenLetDelegate               Token = 0x44
	TokenLocalVirtualFunction      Token = 0x45
	TokenLocalFinalFunction        Token = 0x46
	TokenLocalOutVariable          Token = 0x48
	TokenDeprecatedOp4A            Token = 0x4A
	TokenInstanceDelegate          Token = 0x4B
	TokenPushExecutionFlow         Token = 0x4C
	TokenPopExecutionFlow          Token = 0x4D
	TokenComputedJump              Token = 0x4E
	TokenPopExecutionFlowIfNot     Token = 0x4F
	TokenBreakpoint                Token = 0x50
	TokenInterfaceContext          Token = 0x51
	TokenObjToInterfaceCast        Token = 0x52
	TokenEndOfScript               Token = 0x53
	TokenCrossInterfaceCast        Token = 0x54
	TokenInterfaceToObjCast        Token = 0x55
	TokenWireTracepoint            Token = 0x5A
	TokenSkipOffsetConst           Token = 0x5B
	TokenAddMulticastDelegate      Token = 0x5C
	TokenClearMulticastDelegate    Token = 0x5D
	TokenTracepoint                Token = 0x5E
	TokenLetObj                    Token = 0x5F
	TokenLetWeakObjPtr             Token = 0x60
	TokenBindDelegate              Token = 0x61
	TokenRemoveMulticastDelegate   Token = 0x62
	TokenCallMulticastDelegate     Token = 0x63
	TokenLetValueOnPersistentFrame Token = 0x64
	TokenArrayConst                Token = 0x65
	TokenEndArrayConst             Token = 0x66
	TokenSoftObjectConst           Token = 0x67
	TokenCallMath                  Token = 0x68
	TokenSwitchValue               Token = 0x69
	TokenInstrumentationEvent      Token = 0x6A
	TokenArrayGetByRef             Token = 0x6B
	TokenClassSparseDataVariable   Token = 0x6C
	TokenFieldPathConst            Token = 0x6D
)

var tokenNames = map[Token]string{
	TokenLocalVariable:             "EX_LocalVariable",
	TokenInstanceVariable:          "EX_InstanceVariable",
	TokenDefaultVariable:           "EX_DefaultVariable",
	TokenReturn:                    "EX_Return",
	TokenJump:                      "EX_Jump",
	TokenJumpIfNot:                 "EX_JumpIfNot",
	TokenAssert:                    "EX_Assert",
	TokenNothing:                   "EX_Nothing",
	TokenNothingInt32:              "EX_NothingInt32",
	TokenLet:                       "EX_Let",
	TokenBitFieldConst:             "EX_BitFieldConst",
	TokenClassContext:              "EX_ClassContext",
	TokenMetaCast:                  "EX_MetaCast",
	TokenLetBool:                   "EX_LetBool",
	TokenEndParmValue:              "EX_EndParmValue",
	TokenEndFunctionParms:          "EX_EndFunctionParms",
	TokenSelf:                      "EX_Self",
	TokenSkip:                      "EX_Skip",
	TokenContext:                   "EX_Context",
	TokenContextFailSilent:         "EX_Context_FailSilent",
	TokenVirtualFunction:           "EX_VirtualFunction",
	TokenFinalFunction:             "EX_FinalFunction",
	TokenIntConst:                  "EX_IntConst",
	TokenFloatConst:                "EX_FloatConst",
	TokenStringConst:               "EX_StringConst",
	TokenObjectConst:               "EX_ObjectConst",
	TokenNameConst:                 "EX_NameConst",
	TokenRotationConst:             "EX_RotationConst",
	TokenVectorConst:               "EX_VectorConst",
	TokenByteConst:                 "EX_ByteConst",
	TokenIntZero:                   "EX_IntZero",
	TokenIntOne:                    "EX_IntOne",
	TokenTrue:                      "EX_True",
	TokenFalse:                     "EX_False",
	TokenTextConst:                 "EX_TextConst",
	TokenNoObject:                  "EX_NoObject",
	TokenTransformConst:            "EX_TransformConst",
	TokenIntConstByte:              "EX_IntConstByte",
	TokenNoInterface:               "EX_NoInterface",
	TokenDynamicCast:               "EX_DynamicCast",
	TokenStructConst:               "EX_StructConst",
	TokenEndStructConst:            "EX_EndStructConst",
	TokenSetArray:                  "EX_SetArray",
	TokenEndArray:                  "EX_EndArray",
	TokenPropertyConst:             "EX_PropertyConst",
	TokenUnicodeStringConst:        "EX_UnicodeStringConst",
	TokenInt64Const:                "EX_Int64Const",
	TokenUInt64Const:               "EX_UInt64Const",
	TokenDoubleConst:               "EX_DoubleConst",
	TokenCast:                      "EX_Cast",
	TokenSetSet:                    "EX_SetSet",
	TokenEndSet:                    "EX_EndSet",
	TokenSetMap:                    "EX_SetMap",
	TokenEndMap:                    "EX_EndMap",
	TokenSetConst:                  "EX_SetConst",
	TokenEndSetConst:               "EX_EndSetConst",
	TokenMapConst:                  "EX_MapConst",
	TokenEndMapConst:               "EX_EndMapConst",
	TokenVector3fConst:             "EX_Vector3fConst",
	TokenStructMemberContext:       "EX_StructMemberContext",
	TokenLetMulticastDelegate:      "EX_LetMulticastDelegate",
	TokenLetDelegate:               "EX_LetDelegate",
	TokenLocalVirtualFunction:      "EX_LocalVirtualFunction",
	TokenLocalFinalFunction:        "EX_LocalFinalFunction",
	TokenLocalOutVariable:          "EX_LocalOutVariable",
	TokenDeprecatedOp4A:            "EX_DeprecatedOp4A",
	TokenInstanceDelegate:          "EX_InstanceDelegate",
	TokenPushExecutionFlow:         "EX_PushExecutionFlow",
	TokenPopExecutionFlow:          "EX_PopExecutionFlow",
	TokenComputedJump:              "EX_ComputedJump",
	TokenPopExecutionFlowIfNot:     "EX_PopExecutionFlowIfNot",
	TokenBreakpoint:                "EX_Breakpoint",
	TokenInterfaceContext:          "EX_InterfaceContext",
	TokenObjToInterfaceCast:        "EX_ObjToInterfaceCast",
	TokenEndOfScript:               "EX_EndOfScript",
	TokenCrossInterfaceCast:        "EX_CrossInterfaceCast",
	TokenInterfaceToObjCast:        "EX_InterfaceToObjCast",
	TokenWireTracepoint:            "EX_WireTracepoint",
	TokenSkipOffsetConst:           "EX_SkipOffsetConst",
	TokenAddMulticastDelegate:      "EX_AddMulticastDelegate",
	TokenClearMulticastDelegate:    "EX_ClearMulticastDelegate",
	TokenTracepoint:                "EX_Tracepoint",
	TokenLetObj:                    "EX_LetObj",
	TokenLetWeakObjPtr:             "EX_LetWeakObjPtr",
	TokenBindDelegate:              "EX_BindDelegate",
	TokenRemoveMulticastDelegate:   "EX_RemoveMulticastDelegate",
	TokenCallMulticastDelegate:     "EX_CallMulticastDelegate",
	TokenLetValueOnPersistentFrame: "EX_LetValueOnPersistentFrame",
	TokenArrayConst:                "EX_ArrayConst",
	TokenEndArrayConst:             "EX_EndArrayConst",
	TokenSoftObjectConst:           "EX_SoftObjectConst",
	TokenCallMath:                  "EX_CallMath",
	TokenSwitchValue:               "EX_SwitchValue",
	TokenInstrumentationEvent:      "EX_InstrumentationEvent",
	TokenArrayGetByRef:             "EX_ArrayGetByRef",
	TokenClassSparseDataVariable:   "EX_ClassSparseDataVariable",
	TokenFieldPathConst:            "EX_FieldPathConst",
}

// String returns the engine's name for the token, or a hex form for bytes
// outside the known set.
func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EX_0x%02X", uint8(t))
}

// Known reports whether t is a token this package can represent.
func (t Token) Known() bool {
	_, ok := tokenNames[t]
	return ok
}

// CastKind is the conversion selector carried by EX_Cast.
type CastKind uint8

const (
	CastObjectToInterface CastKind = 0x00
	CastObjectToBool      CastKind = 0x01
	CastInterfaceToBool   CastKind = 0x02
	CastDoubleToFloat     CastKind = 0x03
	CastFloatToDouble     CastKind = 0x04
)

// TargetType names the type a conversion produces.
func (c CastKind) TargetType() string {
	switch c {
	case CastObjectToInterface:
		return "Interface"
	case CastObjectToBool, CastInterfaceToBool:
		return "bool"
	case CastDoubleToFloat:
		return "float"
	case CastFloatToDouble:
		return "double"
	default:
		return fmt.Sprintf("Conversion_0x%02X", uint8(c))
	}
}
