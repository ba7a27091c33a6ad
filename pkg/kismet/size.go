package kismet

// In-memory script sizes used by the engine when it lays out bytecode.
// Offsets in jump operands are measured in these units, not in the
// on-disk encoding.
const (
	sizeToken    = 1
	sizePointer  = 8
	sizeName     = 12
	sizeSkip     = 4
	sizeInt32    = 4
	sizeInt64    = 8
	sizeFloat32  = 4
	sizeFloat64  = 8
	sizeVector   = 3 * sizeFloat64
	sizeVector3f = 3 * sizeFloat32
	sizeQuat     = 4 * sizeFloat64
)

// SerializedSize returns the number of script bytes e occupies, including
// nested operands and any end-of-list terminators. A nil operand occupies
// nothing.
func SerializedSize(e Expr) int {
	switch x := e.(type) {
	case nil:
		return 0
	case *LocalVariable, *InstanceVariable, *DefaultVariable, *LocalOutVariable,
		*ClassSparseDataVariable, *PropertyConst, *ObjectConst:
		return sizeToken + sizePointer
	case *Return:
		return sizeToken + SerializedSize(x.ReturnExpression)
	case *Jump:
		return sizeToken + sizeSkip
	case *JumpIfNot:
		return sizeToken + sizeSkip + SerializedSize(x.BooleanExpression)
	case *ComputedJump:
		return sizeToken + SerializedSize(x.CodeOffsetExpression)
	case *PushExecutionFlow:
		return sizeToken + sizeSkip
	case *PopExecutionFlowIfNot:
		return sizeToken + SerializedSize(x.BooleanExpression)
	case *Assert:
		return sizeToken + 2 + 1 + SerializedSize(x.AssertExpression)
	case *Skip:
		return sizeToken + sizeSkip + SerializedSize(x.SkipExpression)
	case *SwitchValue:
		n := sizeToken + 2 + sizeSkip + SerializedSize(x.IndexTerm)
		for _, c := range x.Cases {
			n += SerializedSize(c.CaseIndexValueTerm) + sizeSkip + SerializedSize(c.CaseTerm)
		}
		return n + SerializedSize(x.DefaultTerm)
	case *NothingInt32:
		return sizeToken + sizeInt32
	case *InstrumentationEvent:
		if x.EventName != "" {
			return sizeToken + 1 + sizeName
		}
		return sizeToken + 1
	case *Let:
		return sizeToken + sizePointer + SerializedSize(x.Variable) + SerializedSize(x.Expression)
	case *LetBool:
		return sizeToken + SerializedSize(x.Variable) + SerializedSize(x.Expression)
	case *LetObj:
		return sizeToken + SerializedSize(x.Variable) + SerializedSize(x.Expression)
	case *LetWeakObjPtr:
		return sizeToken + SerializedSize(x.Variable) + SerializedSize(x.Expression)
	case *LetDelegate:
		return sizeToken + SerializedSize(x.Variable) + SerializedSize(x.Expression)
	case *LetMulticastDelegate:
		return sizeToken + SerializedSize(x.Variable) + SerializedSize(x.Expression)
	case *LetValueOnPersistentFrame:
		return sizeToken + sizePointer + SerializedSize(x.AssignmentExpression)
	case *Context:
		return contextSize(x.ObjectExpression, x.ContextExpression)
	case *ContextFailSilent:
		return contextSize(x.ObjectExpression, x.ContextExpression)
	case *ClassContext:
		return contextSize(x.ObjectExpression, x.ContextExpression)
	case *InterfaceContext:
		return sizeToken + SerializedSize(x.InterfaceValue)
	case *StructMemberContext:
		return sizeToken + sizePointer + SerializedSize(x.StructExpression)
	case *VirtualFunction:
		return sizeToken + sizeName + listSize(x.Parameters)
	case *LocalVirtualFunction:
		return sizeToken + sizeName + listSize(x.Parameters)
	case *FinalFunction:
		return sizeToken + sizePointer + listSize(x.Parameters)
	case *LocalFinalFunction:
		return sizeToken + sizePointer + listSize(x.Parameters)
	case *CallMath:
		return sizeToken + sizePointer + listSize(x.Parameters)
	case *CallMulticastDelegate:
		return sizeToken + sizePointer + SerializedSize(x.Delegate) + listSize(x.Parameters)
	case *AddMulticastDelegate:
		return sizeToken + SerializedSize(x.Delegate) + SerializedSize(x.DelegateToAdd)
	case *RemoveMulticastDelegate:
		return sizeToken + SerializedSize(x.Delegate) + SerializedSize(x.DelegateToAdd)
	case *ClearMulticastDelegate:
		return sizeToken + SerializedSize(x.DelegateToClear)
	case *BindDelegate:
		return sizeToken + sizeName + SerializedSize(x.Delegate) + SerializedSize(x.ObjectTerm)
	case *InstanceDelegate:
		return sizeToken + sizeName
	case *DynamicCast:
		return sizeToken + sizePointer + SerializedSize(x.Target)
	case *MetaCast:
		return sizeToken + sizePointer + SerializedSize(x.Target)
	case *ObjToInterfaceCast:
		return sizeToken + sizePointer + SerializedSize(x.Target)
	case *CrossInterfaceCast:
		return sizeToken + sizePointer + SerializedSize(x.Target)
	case *InterfaceToObjCast:
		return sizeToken + sizePointer + SerializedSize(x.Target)
	case *Cast:
		return sizeToken + 1 + SerializedSize(x.Target)
	case *IntConst:
		return sizeToken + sizeInt32
	case *Int64Const, *UInt64Const:
		return sizeToken + sizeInt64
	case *FloatConst:
		return sizeToken + sizeFloat32
	case *DoubleConst:
		return sizeToken + sizeFloat64
	case *ByteConst, *IntConstByte:
		return sizeToken + 1
	case *StringConst:
		return stringSize(x.Value)
	case *UnicodeStringConst:
		return sizeToken + 2*(len([]rune(x.Value))+1)
	case *NameConst:
		return sizeToken + sizeName
	case *TextConst:
		return textSize(x.Value)
	case *SoftObjectConst:
		return sizeToken + SerializedSize(x.Value)
	case *FieldPathConst:
		return sizeToken + SerializedSize(x.Value)
	case *VectorConst:
		return sizeToken + sizeVector
	case *Vector3fConst:
		return sizeToken + sizeVector3f
	case *RotationConst:
		return sizeToken + sizeVector
	case *TransformConst:
		return sizeToken + sizeQuat + 2*sizeVector
	case *SkipOffsetConst:
		return sizeToken + sizeSkip
	case *BitFieldConst:
		return sizeToken + sizePointer + 1
	case *StructConst:
		return sizeToken + sizePointer + sizeInt32 + listSize(x.Value)
	case *ArrayConst:
		return sizeToken + sizePointer + sizeInt32 + listSize(x.Elements)
	case *SetConst:
		return sizeToken + sizePointer + sizeInt32 + listSize(x.Elements)
	case *MapConst:
		return sizeToken + 2*sizePointer + sizeInt32 + listSize(x.Elements)
	case *SetArray:
		return sizeToken + SerializedSize(x.AssigningProperty) + listSize(x.Elements)
	case *SetSet:
		return sizeToken + SerializedSize(x.SetProperty) + sizeInt32 + listSize(x.Elements)
	case *SetMap:
		return sizeToken + SerializedSize(x.MapProperty) + sizeInt32 + listSize(x.Elements)
	case *ArrayGetByRef:
		return sizeToken + SerializedSize(x.ArrayVariable) + SerializedSize(x.ArrayIndex)
	default:
		// Single-byte sentinels: EX_Nothing, EX_Self, EX_True, markers, Unknown.
		return sizeToken
	}
}

func contextSize(object, context Expr) int {
	return sizeToken + SerializedSize(object) + sizeSkip + sizePointer + SerializedSize(context)
}

// listSize covers a parameter or element list and its one-byte terminator.
func listSize(list []Expr) int {
	n := sizeToken
	for _, e := range list {
		n += SerializedSize(e)
	}
	return n
}

// stringSize is the size of a string operand, which the compiler emits as
// EX_StringConst when every character fits in one byte and as
// EX_UnicodeStringConst otherwise.
func stringSize(s string) int {
	for _, r := range s {
		if r > 0xFF {
			return sizeToken + 2*(len([]rune(s))+1)
		}
	}
	return sizeToken + len([]rune(s)) + 1
}

func textSize(t ScriptText) int {
	n := sizeToken + 1
	switch t.Kind {
	case TextLocalized:
		n += stringSize(t.Source) + stringSize(t.Key) + stringSize(t.Namespace)
	case TextInvariant, TextLiteralString:
		n += stringSize(t.Source)
	case TextStringTableEntry:
		n += sizePointer + stringSize(t.TableID) + stringSize(t.Key)
	}
	return n
}
