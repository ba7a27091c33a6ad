package pins

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// TextHistory is the discriminator that selects a rich text encoding.
type TextHistory int8

const (
	HistoryNone             TextHistory = -1
	HistoryBase             TextHistory = 0
	HistoryNamedFormat      TextHistory = 1
	HistoryOrderedFormat    TextHistory = 2
	HistoryArgumentFormat   TextHistory = 3
	HistoryTransform        TextHistory = 10
	HistoryStringTableEntry TextHistory = 11
)

func (h TextHistory) String() string {
	switch h {
	case HistoryNone:
		return "None"
	case HistoryBase:
		return "Base"
	case HistoryNamedFormat:
		return "NamedFormat"
	case HistoryOrderedFormat:
		return "OrderedFormat"
	case HistoryArgumentFormat:
		return "ArgumentFormat"
	case HistoryTransform:
		return "Transform"
	case HistoryStringTableEntry:
		return "StringTableEntry"
	default:
		return fmt.Sprintf("History(%d)", int8(h))
	}
}

// ArgKind is the value type of a format argument.
type ArgKind int8

const (
	ArgInt    ArgKind = 0
	ArgUInt   ArgKind = 1
	ArgFloat  ArgKind = 2
	ArgDouble ArgKind = 3
	ArgText   ArgKind = 4
	ArgGender ArgKind = 5
)

// TransformKind selects the case transform of a Transform history.
type TransformKind uint8

const (
	TransformToLower TransformKind = 0
	TransformToUpper TransformKind = 1
)

// maxTextDepth bounds recursion through nested format and transform texts.
const maxTextDepth = 16

// Text is a decoded localizable text value.
type Text struct {
	Flags   uint32
	History TextHistory

	// None: the culture invariant string, if any.
	Invariant string

	// Base.
	Namespace string
	Key       string // also the entry key for string table references
	Source    string

	// Format histories use Inner as the pattern; Transform wraps it.
	Inner     *Text
	Args      []FormatArg
	Transform TransformKind

	// StringTableEntry.
	TableID string
}

// FormatArg is one named (or positional) argument of a formatted text.
type FormatArg struct {
	Name   string
	Kind   ArgKind
	Int    int64
	UInt   uint64
	Float  float64
	Text   *Text
	Gender uint8
}

// Value renders the argument the way it would appear in formatted output.
func (a FormatArg) Value() string {
	switch a.Kind {
	case ArgInt:
		return strconv.FormatInt(a.Int, 10)
	case ArgUInt:
		return strconv.FormatUint(a.UInt, 10)
	case ArgFloat:
		return strconv.FormatFloat(a.Float, 'g', -1, 32)
	case ArgDouble:
		return strconv.FormatFloat(a.Float, 'g', -1, 64)
	case ArgText:
		if a.Text == nil {
			return ""
		}
		return a.Text.String()
	case ArgGender:
		switch a.Gender {
		case 0:
			return "Masculine"
		case 1:
			return "Feminine"
		default:
			return "Neuter"
		}
	default:
		return ""
	}
}

// String returns the best display string for the text.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	switch t.History {
	case HistoryNone:
		return t.Invariant
	case HistoryBase:
		return t.Source
	case HistoryNamedFormat, HistoryOrderedFormat, HistoryArgumentFormat:
		out := t.Inner.String()
		for _, arg := range t.Args {
			out = strings.ReplaceAll(out, "{"+arg.Name+"}", arg.Value())
		}
		return out
	case HistoryTransform:
		if t.Transform == TransformToUpper {
			return strings.ToUpper(t.Inner.String())
		}
		return strings.ToLower(t.Inner.String())
	case HistoryStringTableEntry:
		return t.TableID + ":" + t.Key
	default:
		return ""
	}
}

// IsEmpty reports whether the text carries no displayable content.
func (t *Text) IsEmpty() bool {
	return t == nil || t.String() == ""
}

var (
	latin1  = charmap.ISO8859_1
	utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// str reads a length-prefixed string. A positive length counts single-byte
// characters, a negative length counts UTF-16 code units, zero is empty.
// Both forms carry a trailing NUL that is dropped.
func (d *decoder) str(field string) (string, error) {
	d.field = field
	n, err := d.r.i32()
	if err != nil {
		return "", d.fail(err)
	}
	if n == 0 {
		return "", nil
	}

	size := int64(n)
	if n < 0 {
		size = -2 * int64(n)
	}
	if size > int64(d.r.remaining()) {
		return "", d.fail(ErrStringLength)
	}
	raw, err := d.r.take(int(size))
	if err != nil {
		return "", d.fail(err)
	}

	var decoded []byte
	if n > 0 {
		decoded, err = latin1.NewDecoder().Bytes(raw)
	} else {
		decoded, err = utf16le.NewDecoder().Bytes(raw)
	}
	if err != nil {
		return "", d.fail(err)
	}
	return strings.TrimSuffix(string(decoded), "\x00"), nil
}

// text reads a rich text value. Nested reads report their part of the
// structure after the outer field name, e.g. "PinFriendlyName.Source".
func (d *decoder) text(field string, depth int) (*Text, error) {
	if depth > maxTextDepth {
		d.field = field
		return nil, d.fail(ErrTextDepth)
	}

	t := &Text{}
	var err error
	if t.Flags, err = d.u32(field + ".Flags"); err != nil {
		return nil, err
	}
	d.field = field + ".HistoryType"
	h, err := d.r.i8()
	if err != nil {
		return nil, d.fail(err)
	}
	t.History = TextHistory(h)

	switch t.History {
	case HistoryNone:
		has, err := d.bool32(field + ".HasInvariant")
		if err != nil {
			return nil, err
		}
		if has {
			if t.Invariant, err = d.str(field + ".Invariant"); err != nil {
				return nil, err
			}
		}

	case HistoryBase:
		if t.Namespace, err = d.str(field + ".Namespace"); err != nil {
			return nil, err
		}
		if t.Key, err = d.str(field + ".Key"); err != nil {
			return nil, err
		}
		if t.Source, err = d.str(field + ".Source"); err != nil {
			return nil, err
		}

	case HistoryNamedFormat, HistoryOrderedFormat, HistoryArgumentFormat:
		if t.Inner, err = d.text(field+".Format", depth+1); err != nil {
			return nil, err
		}
		count, err := d.i32(field + ".ArgCount")
		if err != nil {
			return nil, err
		}
		// Every argument needs at least its type byte.
		if count < 0 || int(count) > d.r.remaining() {
			d.field = field + ".ArgCount"
			return nil, d.fail(ErrTruncated)
		}
		t.Args = make([]FormatArg, 0, count)
		for i := 0; i < int(count); i++ {
			arg := FormatArg{Name: strconv.Itoa(i)}
			if t.History != HistoryOrderedFormat {
				if arg.Name, err = d.str(field + ".ArgName"); err != nil {
					return nil, err
				}
			}
			if err := d.formatArg(field, depth, &arg); err != nil {
				return nil, err
			}
			t.Args = append(t.Args, arg)
		}

	case HistoryTransform:
		if t.Inner, err = d.text(field+".Source", depth+1); err != nil {
			return nil, err
		}
		kind, err := d.u8(field + ".TransformType")
		if err != nil {
			return nil, err
		}
		t.Transform = TransformKind(kind)

	case HistoryStringTableEntry:
		if t.TableID, err = d.name(field + ".TableId"); err != nil {
			return nil, err
		}
		if t.Key, err = d.str(field + ".Key"); err != nil {
			return nil, err
		}

	default:
		d.field = field + ".HistoryType"
		d.r.pos--
		return nil, d.fail(fmt.Errorf("%w: %d", ErrUnknownTextHistory, h))
	}
	return t, nil
}

func (d *decoder) formatArg(field string, depth int, arg *FormatArg) error {
	d.field = field + ".ArgType"
	kind, err := d.r.i8()
	if err != nil {
		return d.fail(err)
	}
	arg.Kind = ArgKind(kind)

	switch arg.Kind {
	case ArgInt:
		arg.Int, err = d.i64(field + ".ArgValue")
	case ArgUInt:
		arg.UInt, err = d.u64(field + ".ArgValue")
	case ArgFloat:
		var f float32
		f, err = d.f32(field + ".ArgValue")
		arg.Float = float64(f)
	case ArgDouble:
		arg.Float, err = d.f64(field + ".ArgValue")
	case ArgText:
		arg.Text, err = d.text(field+".ArgValue", depth+1)
	case ArgGender:
		arg.Gender, err = d.u8(field + ".ArgValue")
	default:
		d.r.pos--
		return d.fail(fmt.Errorf("%w: %d", ErrUnknownArgument, kind))
	}
	return err
}
