// Package pins decodes the pin list an editor graph node stores in its
// trailing Extras bytes.
//
// There is no published schema for this data. The field order below was
// recovered from editor-saved assets and is read strictly in sequence;
// any divergence surfaces as a *DecodeError naming the field, the pin and
// the byte offset so it can be compared against a hex dump.
//
// Per pin, little-endian, bool = uint32, FName = (int32 index, int32
// number), GUID = 16 bytes, object = int32 package index:
//
//	OwningNode, PinId, PinName, PinFriendlyName (text), SourceIndex,
//	PinToolTip, Direction (u8),
//	PinCategory, PinSubCategory, PinSubCategoryObject,
//	MemberParent, MemberName, MemberGuid,
//	TerminalCategory, TerminalSubCategory, TerminalSubCategoryObject,
//	bTerminalIsConst, bTerminalIsWeakPointer, bTerminalIsUObjectWrapper,
//	ContainerType (u8), bIsReference, bIsWeakPointer, bIsConst,
//	bIsUObjectWrapper, [bSerializeAsSinglePrecisionFloat],
//	DefaultValue, AutogeneratedDefaultValue, DefaultObject,
//	DefaultTextValue (text), LinkedTo, SubPins, ParentPin,
//	ReferencePassThroughConnection, PersistentGuid, BitField (u32)
package pins

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
)

// MaxPins bounds the declared pin count of a single node. Larger counts
// only come from misaligned or corrupt data.
const MaxPins = 500

// VersionLargeWorldCoordinates is the first object version whose pin types
// carry the single-precision float flag.
const VersionLargeWorldCoordinates asset.Version = 1004

// Options carries the asset-level context a decode needs.
type Options struct {
	// Version is the asset's object format version counter.
	Version asset.Version
	// Names resolves FName fields. When nil, names decode as "name#<index>".
	Names asset.NameTable
	// Resolver names object references. When nil, the index label is used.
	Resolver asset.Resolver
	// MaxPins lowers the pin count limit. Zero means MaxPins.
	MaxPins int
}

func (o Options) maxPins() int {
	if o.MaxPins <= 0 || o.MaxPins > MaxPins {
		return MaxPins
	}
	return o.MaxPins
}

// layout holds the version-dependent shape of a pin record. All version
// gating happens in layoutFor.
type layout struct {
	floatPrecisionFlag bool
}

func layoutFor(v asset.Version) layout {
	return layout{floatPrecisionFlag: v >= VersionLargeWorldCoordinates}
}

// decoder tracks the field and pin being read so failures can say where
// the layout diverged.
type decoder struct {
	r      reader
	opts   Options
	layout layout
	field  string
	pin    string
	index  int
}

func newDecoder(buf []byte, opts Options) *decoder {
	return &decoder{
		r:      reader{buf: buf},
		opts:   opts,
		layout: layoutFor(opts.Version),
		index:  -1,
	}
}

func (d *decoder) fail(cause error) error {
	return &DecodeError{
		Field:    d.field,
		PinName:  d.pin,
		PinIndex: d.index,
		Offset:   d.r.pos,
		Cause:    cause,
	}
}

// Decode reads exactly count pins from buf. The buffer is only read.
func Decode(buf []byte, count int, opts Options) ([]Pin, error) {
	d := newDecoder(buf, opts)
	if err := d.checkCount(count); err != nil {
		return nil, err
	}
	return d.pins(count)
}

// DecodeExtras reads a node's Extras blob: an int32 pin count followed by
// the pins themselves. Offsets in errors are relative to the blob start.
func DecodeExtras(buf []byte, opts Options) ([]Pin, error) {
	d := newDecoder(buf, opts)
	count, err := d.i32("NumPins")
	if err != nil {
		return nil, err
	}
	if err := d.checkCount(int(count)); err != nil {
		return nil, err
	}
	return d.pins(int(count))
}

func (d *decoder) checkCount(count int) error {
	if count < 0 || count > d.opts.maxPins() {
		d.field = "NumPins"
		return d.fail(fmt.Errorf("%w: %d not in [0, %d]", ErrPinCount, count, d.opts.maxPins()))
	}
	return nil
}

func (d *decoder) pins(count int) ([]Pin, error) {
	out := make([]Pin, 0, count)
	for i := 0; i < count; i++ {
		d.index = i
		d.pin = ""
		p, err := d.decodePin()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (d *decoder) decodePin() (Pin, error) {
	var (
		p   Pin
		err error
	)

	if p.OwningNode, err = d.ref("OwningNode"); err != nil {
		return p, err
	}
	if p.ID, err = d.guid("PinId"); err != nil {
		return p, err
	}
	if p.Name, err = d.name("PinName"); err != nil {
		return p, err
	}
	d.pin = p.Name

	if p.FriendlyName, err = d.text("PinFriendlyName", 0); err != nil {
		return p, err
	}
	if p.SourceIndex, err = d.i32("SourceIndex"); err != nil {
		return p, err
	}
	if p.ToolTip, err = d.str("PinToolTip"); err != nil {
		return p, err
	}

	dir, err := d.u8("Direction")
	if err != nil {
		return p, err
	}
	if dir > uint8(Output) {
		d.r.pos--
		return p, d.fail(fmt.Errorf("%w: %d", ErrDirection, dir))
	}
	p.Direction = Direction(dir)

	if err := d.pinType(&p.Type); err != nil {
		return p, err
	}

	if p.DefaultValue, err = d.str("DefaultValue"); err != nil {
		return p, err
	}
	if p.AutogeneratedDefaultValue, err = d.str("AutogeneratedDefaultValue"); err != nil {
		return p, err
	}
	defaultObject, err := d.ref("DefaultObject")
	if err != nil {
		return p, err
	}
	if !defaultObject.IsNull() {
		p.DefaultObject = asset.ResolveName(d.opts.Resolver, defaultObject)
	}
	if p.DefaultText, err = d.text("DefaultTextValue", 0); err != nil {
		return p, err
	}

	if p.LinkedTo, err = d.links("LinkedTo"); err != nil {
		return p, err
	}
	if p.SubPins, err = d.links("SubPins"); err != nil {
		return p, err
	}
	if p.ParentPin, err = d.link("ParentPin"); err != nil {
		return p, err
	}
	if p.PassThrough, err = d.link("ReferencePassThroughConnection"); err != nil {
		return p, err
	}
	if p.PersistentGUID, err = d.guid("PersistentGuid"); err != nil {
		return p, err
	}

	bits, err := d.u32("BitField")
	if err != nil {
		return p, err
	}
	p.Hidden = bits&flagHidden != 0
	p.NotConnectable = bits&flagNotConnectable != 0
	p.DefaultValueIsReadOnly = bits&flagDefaultValueIsReadOnly != 0
	p.DefaultValueIsIgnored = bits&flagDefaultValueIsIgnored != 0
	p.AdvancedView = bits&flagAdvancedView != 0
	p.Orphaned = bits&flagOrphaned != 0
	return p, nil
}

func (d *decoder) pinType(t *PinType) error {
	var err error
	if t.Category, err = d.name("PinCategory"); err != nil {
		return err
	}
	if t.SubCategory, err = d.name("PinSubCategory"); err != nil {
		return err
	}
	if t.SubCategoryRef, err = d.ref("PinSubCategoryObject"); err != nil {
		return err
	}
	if !t.SubCategoryRef.IsNull() {
		t.SubCategoryObject = asset.ResolveName(d.opts.Resolver, t.SubCategoryRef)
	}

	parent, err := d.ref("MemberParent")
	if err != nil {
		return err
	}
	if !parent.IsNull() {
		t.Member.Parent = asset.ResolveName(d.opts.Resolver, parent)
	}
	if t.Member.Name, err = d.name("MemberName"); err != nil {
		return err
	}
	if t.Member.GUID, err = d.guid("MemberGuid"); err != nil {
		return err
	}

	if t.Value.Category, err = d.name("TerminalCategory"); err != nil {
		return err
	}
	if t.Value.SubCategory, err = d.name("TerminalSubCategory"); err != nil {
		return err
	}
	terminalObject, err := d.ref("TerminalSubCategoryObject")
	if err != nil {
		return err
	}
	if !terminalObject.IsNull() {
		t.Value.SubCategoryObject = asset.ResolveName(d.opts.Resolver, terminalObject)
	}
	if t.Value.IsConst, err = d.bool32("bTerminalIsConst"); err != nil {
		return err
	}
	if t.Value.IsWeakPointer, err = d.bool32("bTerminalIsWeakPointer"); err != nil {
		return err
	}
	if t.Value.IsUObjectWrapper, err = d.bool32("bTerminalIsUObjectWrapper"); err != nil {
		return err
	}

	container, err := d.u8("ContainerType")
	if err != nil {
		return err
	}
	if container > uint8(ContainerMap) {
		d.r.pos--
		return d.fail(fmt.Errorf("%w: %d", ErrContainerType, container))
	}
	t.Container = ContainerType(container)

	if t.IsReference, err = d.bool32("bIsReference"); err != nil {
		return err
	}
	if t.IsWeakPointer, err = d.bool32("bIsWeakPointer"); err != nil {
		return err
	}
	if t.IsConst, err = d.bool32("bIsConst"); err != nil {
		return err
	}
	if t.IsUObjectWrapper, err = d.bool32("bIsUObjectWrapper"); err != nil {
		return err
	}
	if d.layout.floatPrecisionFlag {
		if t.SinglePrecisionFloat, err = d.bool32("bSerializeAsSinglePrecisionFloat"); err != nil {
			return err
		}
	}
	return nil
}

// link reads a possibly-null pin reference.
func (d *decoder) link(field string) (*LinkRef, error) {
	isNull, err := d.bool32(field + ".bNullPtr")
	if err != nil {
		return nil, err
	}
	if isNull {
		return nil, nil
	}
	node, err := d.ref(field + ".OwningNode")
	if err != nil {
		return nil, err
	}
	id, err := d.guid(field + ".PinId")
	if err != nil {
		return nil, err
	}
	return &LinkRef{Node: node, PinID: id}, nil
}

// links reads a counted list of pin references. Null entries are skipped.
func (d *decoder) links(field string) ([]LinkRef, error) {
	count, err := d.i32(field + ".Num")
	if err != nil {
		return nil, err
	}
	// Each entry is at least its four-byte null marker.
	if count < 0 || count > MaxPins || int(count)*4 > d.r.remaining() {
		d.r.pos -= 4
		return nil, d.fail(fmt.Errorf("%w: %d", ErrLinkCount, count))
	}
	var out []LinkRef
	for i := 0; i < int(count); i++ {
		l, err := d.link(field)
		if err != nil {
			return nil, err
		}
		if l != nil {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (d *decoder) name(field string) (string, error) {
	d.field = field
	start := d.r.pos
	index, err := d.r.i32()
	if err != nil {
		return "", d.fail(err)
	}
	number, err := d.r.i32()
	if err != nil {
		return "", d.fail(err)
	}
	if d.opts.Names == nil {
		if number == 0 {
			return fmt.Sprintf("name#%d", index), nil
		}
		return fmt.Sprintf("name#%d_%d", index, number-1), nil
	}
	s, ok := d.opts.Names.Name(index, number)
	if !ok {
		d.r.pos = start
		return "", d.fail(fmt.Errorf("%w: %d", ErrNameIndex, index))
	}
	return s, nil
}

func (d *decoder) ref(field string) (asset.PackageIndex, error) {
	v, err := d.i32(field)
	return asset.PackageIndex(v), err
}

func (d *decoder) guid(field string) (uuid.UUID, error) {
	d.field = field
	id, err := d.r.guid()
	if err != nil {
		return id, d.fail(err)
	}
	return id, nil
}

func (d *decoder) bool32(field string) (bool, error) {
	d.field = field
	v, err := d.r.bool32()
	if err != nil {
		return false, d.fail(err)
	}
	return v, nil
}

func (d *decoder) u8(field string) (uint8, error) {
	d.field = field
	v, err := d.r.u8()
	if err != nil {
		return 0, d.fail(err)
	}
	return v, nil
}

func (d *decoder) u32(field string) (uint32, error) {
	d.field = field
	v, err := d.r.u32()
	if err != nil {
		return 0, d.fail(err)
	}
	return v, nil
}

func (d *decoder) i32(field string) (int32, error) {
	d.field = field
	v, err := d.r.i32()
	if err != nil {
		return 0, d.fail(err)
	}
	return v, nil
}

func (d *decoder) u64(field string) (uint64, error) {
	d.field = field
	v, err := d.r.u64()
	if err != nil {
		return 0, d.fail(err)
	}
	return v, nil
}

func (d *decoder) i64(field string) (int64, error) {
	d.field = field
	v, err := d.r.i64()
	if err != nil {
		return 0, d.fail(err)
	}
	return v, nil
}

func (d *decoder) f32(field string) (float32, error) {
	d.field = field
	v, err := d.r.f32()
	if err != nil {
		return 0, d.fail(err)
	}
	return v, nil
}

func (d *decoder) f64(field string) (float64, error) {
	d.field = field
	v, err := d.r.f64()
	if err != nil {
		return 0, d.fail(err)
	}
	return v, nil
}
