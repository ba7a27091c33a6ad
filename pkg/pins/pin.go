package pins

import (
	"github.com/google/uuid"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
)

// Direction is the side of the node a pin sits on.
type Direction uint8

const (
	Input  Direction = 0
	Output Direction = 1
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// ContainerType says whether a pin carries a single value or a container.
type ContainerType uint8

const (
	ContainerNone  ContainerType = 0
	ContainerArray ContainerType = 1
	ContainerSet   ContainerType = 2
	ContainerMap   ContainerType = 3
)

func (c ContainerType) String() string {
	switch c {
	case ContainerArray:
		return "array"
	case ContainerSet:
		return "set"
	case ContainerMap:
		return "map"
	default:
		return "none"
	}
}

// Well-known pin categories.
const (
	CategoryExec     = "exec"
	CategoryObject   = "object"
	CategoryStruct   = "struct"
	CategoryWildcard = "wildcard"
)

// LinkRef points at a pin on another (or the same) node.
type LinkRef struct {
	Node  asset.PackageIndex
	PinID uuid.UUID
}

// MemberReference identifies the member a pin type was created from.
type MemberReference struct {
	Parent string
	Name   string
	GUID   uuid.UUID
}

// TerminalType is the value type of a map pin.
type TerminalType struct {
	Category          string
	SubCategory       string
	SubCategoryObject string
	IsConst           bool
	IsWeakPointer     bool
	IsUObjectWrapper  bool
}

// PinType is the type tag of a pin.
type PinType struct {
	Category          string
	SubCategory       string
	SubCategoryObject string // Resolved object name, empty when null
	SubCategoryRef    asset.PackageIndex
	Member            MemberReference
	Value             TerminalType
	Container         ContainerType
	IsReference       bool
	IsWeakPointer     bool
	IsConst           bool
	IsUObjectWrapper  bool

	// SinglePrecisionFloat is only present in assets saved at or after
	// VersionLargeWorldCoordinates.
	SinglePrecisionFloat bool
}

// Pin is one decoded connector of a graph node.
type Pin struct {
	ID           uuid.UUID
	OwningNode   asset.PackageIndex
	Name         string
	FriendlyName *Text
	SourceIndex  int32
	ToolTip      string
	Direction    Direction
	Type         PinType

	DefaultValue              string
	AutogeneratedDefaultValue string
	DefaultObject             string
	DefaultText               *Text

	LinkedTo       []LinkRef
	SubPins        []LinkRef
	ParentPin      *LinkRef
	PassThrough    *LinkRef
	PersistentGUID uuid.UUID

	Hidden                 bool
	NotConnectable         bool
	DefaultValueIsReadOnly bool
	DefaultValueIsIgnored  bool
	AdvancedView           bool
	Orphaned               bool
}

// IsExec reports whether the pin carries execution flow rather than data.
func (p *Pin) IsExec() bool {
	return p.Type.Category == CategoryExec
}

// HasUserDefault reports whether the pin's default differs from what the
// editor would have generated on its own.
func (p *Pin) HasUserDefault() bool {
	if p.DefaultValue != "" && p.DefaultValue != p.AutogeneratedDefaultValue {
		return true
	}
	return p.DefaultObject != "" || !p.DefaultText.IsEmpty()
}

// Default returns the pin's default in display form.
func (p *Pin) Default() string {
	switch {
	case p.DefaultObject != "":
		return p.DefaultObject
	case !p.DefaultText.IsEmpty():
		return p.DefaultText.String()
	default:
		return p.DefaultValue
	}
}

// Bits of the trailing pin flag word.
const (
	flagHidden uint32 = 1 << iota
	flagNotConnectable
	flagDefaultValueIsReadOnly
	flagDefaultValueIsIgnored
	flagAdvancedView
	flagOrphaned
)
