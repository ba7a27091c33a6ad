package pins

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf16"

	"github.com/google/uuid"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
)

// testNames is the name map shared by the pin tests.
var testNames = asset.Names{
	"None",        // 0
	"execute",     // 1
	"then",        // 2
	"exec",        // 3
	"bool",        // 4
	"Condition",   // 5
	"object",      // 6
	"ReturnValue", // 7
	"int",         // 8
	"Count",       // 9
	"MyTable",     // 10
}

// blob builds little-endian test buffers.
type blob struct {
	bytes.Buffer
}

func (b *blob) u8(v uint8) *blob {
	b.WriteByte(v)
	return b
}

func (b *blob) i8(v int8) *blob {
	return b.u8(uint8(v))
}

func (b *blob) u32(v uint32) *blob {
	binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *blob) i32(v int32) *blob {
	binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *blob) i64(v int64) *blob {
	binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *blob) f64(v float64) *blob {
	return b.i64(int64(math.Float64bits(v)))
}

func (b *blob) boolean(v bool) *blob {
	if v {
		return b.u32(1)
	}
	return b.u32(0)
}

func (b *blob) guid(id uuid.UUID) *blob {
	b.Write(id[:])
	return b
}

func (b *blob) name(index int32) *blob {
	return b.i32(index).i32(0)
}

// str writes a single-byte string with its NUL terminator.
func (b *blob) str(s string) *blob {
	if s == "" {
		return b.i32(0)
	}
	b.i32(int32(len(s) + 1))
	b.WriteString(s)
	return b.u8(0)
}

// wstr writes a UTF-16 string with its NUL terminator.
func (b *blob) wstr(s string) *blob {
	units := utf16.Encode([]rune(s))
	b.i32(-int32(len(units) + 1))
	for _, u := range units {
		binary.Write(&b.Buffer, binary.LittleEndian, u)
	}
	return b.u8(0).u8(0)
}

func (b *blob) emptyText() *blob {
	return b.u32(0).i8(int8(HistoryNone)).boolean(false)
}

func (b *blob) baseText(ns, key, source string) *blob {
	return b.u32(0).i8(int8(HistoryBase)).str(ns).str(key).str(source)
}

func (b *blob) nullLink() *blob {
	return b.boolean(true)
}

func (b *blob) link(node asset.PackageIndex, id uuid.UUID) *blob {
	return b.boolean(false).i32(int32(node)).guid(id)
}

// testPin describes the variable parts of a pin record.
type testPin struct {
	owner     asset.PackageIndex
	id        uuid.UUID
	name      int32
	direction Direction
	category  int32
	container ContainerType
	def       string
	autoDef   string
	links     []LinkRef
	flags     uint32
}

func (b *blob) pin(p testPin, version asset.Version) *blob {
	b.i32(int32(p.owner)).guid(p.id).name(p.name)
	// Friendly name, source index, tooltip, direction.
	b.emptyText().i32(-1).str("").u8(uint8(p.direction))
	// Category, subcategory, subcategory object.
	b.name(p.category).name(0).i32(0)
	// Member reference.
	b.i32(0).name(0).guid(uuid.Nil)
	// Terminal type.
	b.name(0).name(0).i32(0)
	b.boolean(false).boolean(false).boolean(false)
	b.u8(uint8(p.container))
	b.boolean(false).boolean(false).boolean(false).boolean(false)
	if version >= VersionLargeWorldCoordinates {
		b.boolean(false)
	}
	// Defaults: value, autogenerated value, object, text.
	b.str(p.def).str(p.autoDef).i32(0).emptyText()
	b.i32(int32(len(p.links)))
	for _, l := range p.links {
		b.link(l.Node, l.PinID)
	}
	// Sub pins, parent, pass-through, persistent guid.
	b.i32(0).nullLink().nullLink().guid(uuid.Nil)
	return b.u32(p.flags)
}

func fixedID(n byte) uuid.UUID {
	var id uuid.UUID
	for i := range id {
		id[i] = n
	}
	return id
}
