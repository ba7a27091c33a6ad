package pins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStrings(t *testing.T) {
	latin := &blob{}
	latin.i32(6)
	latin.Write([]byte{'H', 0xE9, 'l', 'l', 'o', 0})

	tests := []struct {
		name     string
		buf      *blob
		expected string
	}{
		{"latin1", latin, "Héllo"},
		{"ascii", (&blob{}).str("PinName"), "PinName"},
		{"utf16", (&blob{}).wstr("日本語"), "日本語"},
		{"utf16 surrogate pair", (&blob{}).wstr("Door 🚪"), "Door 🚪"},
		{"empty", (&blob{}).i32(0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.buf.Bytes(), Options{})
			s, err := d.str("PinToolTip")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
			assert.Equal(t, tt.buf.Len(), d.r.pos)
		})
	}
}

func TestDecodeStringTooLong(t *testing.T) {
	b := (&blob{}).i32(100).u8('a').u8('b')
	d := newDecoder(b.Bytes(), Options{})

	_, err := d.str("PinToolTip")
	assert.ErrorIs(t, err, ErrStringLength)
	de, ok := IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "PinToolTip", de.Field)
	assert.Equal(t, 4, de.Offset)
}

func TestDecodeText(t *testing.T) {
	named := (&blob{}).u32(0).i8(int8(HistoryNamedFormat)).
		baseText("", "", "{Count} items").
		i32(1).str("Count").i8(int8(ArgInt)).i64(3)

	ordered := (&blob{}).u32(0).i8(int8(HistoryOrderedFormat)).
		baseText("", "", "{0} of {1}").
		i32(2).
		i8(int8(ArgInt)).i64(1).
		i8(int8(ArgText)).baseText("", "", "all")

	transform := (&blob{}).u32(0).i8(int8(HistoryTransform)).
		baseText("", "", "hi").u8(uint8(TransformToUpper))

	table := (&blob{}).u32(0).i8(int8(HistoryStringTableEntry)).name(10).str("Greeting")

	tests := []struct {
		name     string
		buf      *blob
		history  TextHistory
		expected string
	}{
		{"none", (&blob{}).emptyText(), HistoryNone, ""},
		{"invariant", (&blob{}).u32(0).i8(int8(HistoryNone)).boolean(true).str("Inv"), HistoryNone, "Inv"},
		{"base", (&blob{}).baseText("UI", "K1", "Open Door"), HistoryBase, "Open Door"},
		{"named format", named, HistoryNamedFormat, "3 items"},
		{"ordered format", ordered, HistoryOrderedFormat, "1 of all"},
		{"transform", transform, HistoryTransform, "HI"},
		{"string table", table, HistoryStringTableEntry, "MyTable:Greeting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.buf.Bytes(), Options{Names: testNames})
			text, err := d.text("DefaultTextValue", 0)
			require.NoError(t, err)
			assert.Equal(t, tt.history, text.History)
			assert.Equal(t, tt.expected, text.String())
			assert.Equal(t, tt.buf.Len(), d.r.pos)
		})
	}
}

func TestDecodeTextBaseFields(t *testing.T) {
	b := (&blob{}).baseText("UI", "K1", "Open Door")
	d := newDecoder(b.Bytes(), Options{})

	text, err := d.text("PinFriendlyName", 0)
	require.NoError(t, err)
	assert.Equal(t, "UI", text.Namespace)
	assert.Equal(t, "K1", text.Key)
	assert.Equal(t, "Open Door", text.Source)
	assert.False(t, text.IsEmpty())
}

func TestDecodeTextUnknownHistory(t *testing.T) {
	b := (&blob{}).u32(0).i8(5)
	d := newDecoder(b.Bytes(), Options{})

	_, err := d.text("PinFriendlyName", 0)
	assert.ErrorIs(t, err, ErrUnknownTextHistory)
	de, ok := IsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "PinFriendlyName.HistoryType", de.Field)
	assert.Equal(t, 4, de.Offset)
}

func TestDecodeTextUnknownArgument(t *testing.T) {
	b := (&blob{}).u32(0).i8(int8(HistoryNamedFormat)).
		baseText("", "", "{X}").
		i32(1).str("X").i8(9)
	d := newDecoder(b.Bytes(), Options{})

	_, err := d.text("DefaultTextValue", 0)
	assert.ErrorIs(t, err, ErrUnknownArgument)
	de, _ := IsDecodeError(err)
	require.NotNil(t, de)
	assert.Equal(t, "DefaultTextValue.ArgType", de.Field)
	assert.Equal(t, b.Len()-1, de.Offset)
}

func TestDecodeTextDepthLimit(t *testing.T) {
	b := &blob{}
	for i := 0; i < maxTextDepth+4; i++ {
		b.u32(0).i8(int8(HistoryTransform))
	}
	d := newDecoder(b.Bytes(), Options{})

	_, err := d.text("DefaultTextValue", 0)
	assert.ErrorIs(t, err, ErrTextDepth)
}

func TestFormatArgValue(t *testing.T) {
	tests := []struct {
		arg      FormatArg
		expected string
	}{
		{FormatArg{Kind: ArgInt, Int: -4}, "-4"},
		{FormatArg{Kind: ArgUInt, UInt: 7}, "7"},
		{FormatArg{Kind: ArgFloat, Float: 0.5}, "0.5"},
		{FormatArg{Kind: ArgDouble, Float: 2.25}, "2.25"},
		{FormatArg{Kind: ArgGender, Gender: 1}, "Feminine"},
		{FormatArg{Kind: ArgText}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.arg.Value())
	}
}
