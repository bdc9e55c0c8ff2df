package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteItem_BareItems(t *testing.T) {
	tests := []struct {
		name string
		bare BareItem
		want string
	}{
		{"boolean true", Boolean(true), "?1"},
		{"boolean false", Boolean(false), "?0"},
		{"integer", Integer(42), "42"},
		{"negative integer", Integer(-17), "-17"},
		{"max integer", Integer(999_999_999_999_999), "999999999999999"},
		{"decimal", DecimalItem(mustDecimal(t, 45, -1)), "4.5"},
		{"decimal strips trailing zeros", DecimalItem(mustDecimal(t, 1500, -3)), "1.5"},
		{"decimal keeps one fraction digit", DecimalItem(mustDecimal(t, 3, 0)), "3.0"},
		{"decimal leading zero", DecimalItem(mustDecimal(t, -5, -1)), "-0.5"},
		{"string", String("hello"), `"hello"`},
		{"string escapes", String(`a"b\c`), `"a\"b\\c"`},
		{"empty string", String(""), `""`},
		{"token", Token("foo/bar:baz"), "foo/bar:baz"},
		{"byte sequence", ByteSequence("AQIDBA=="), ":AQIDBA==:"},
		{"empty byte sequence", ByteSequence(""), "::"},
		{"date", Date(1659578233), "@1659578233"},
		{"negative date", Date(-1), "@-1"},
		{"display string plain", DisplayString("plain"), `%"plain"`},
		{"display string escapes", DisplayString(`f%ü"`), `%"f%25%c3%bc%22"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := WriteItem(Item{Bare: tt.bare})
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestWriteItem_Parameters(t *testing.T) {
	item := NewItem(Integer(5))
	item.Params.Put("bar", Token("baz"))
	item.Params.Put("flag", Boolean(true))
	item.Params.Put("q", DecimalItem(mustDecimal(t, 5, -1)))

	out, err := WriteItem(item)
	require.NoError(t, err)
	assert.Equal(t, "5;bar=baz;flag;q=0.5", string(out))
}

func TestWriteItem_Errors(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want error
	}{
		{"integer too large", Item{Bare: Integer(1_000_000_000_000_000)}, ErrInvalidIntegerOrDecimal},
		{"integer too small", Item{Bare: Integer(-1_000_000_000_000_000)}, ErrInvalidIntegerOrDecimal},
		{"date too large", Item{Bare: Date(1_000_000_000_000_000)}, ErrInvalidDate},
		{"string with control byte", Item{Bare: String("a\nb")}, ErrInvalidString},
		{"string with high byte", Item{Bare: String("a\xffb")}, ErrInvalidString},
		{"invalid token", Item{Bare: Token("1abc")}, ErrInvalidToken},
		{"empty token", Item{Bare: Token("")}, ErrInvalidToken},
		{"token with space", Item{Bare: Token("a b")}, ErrInvalidToken},
		{"display string bad utf8", Item{Bare: DisplayString("f\xc3\x28")}, ErrInvalidDisplayString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WriteItem(tt.item)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWriteItem_InvalidParameterKey(t *testing.T) {
	item := NewItem(Integer(1))
	item.Params.Put("BAD", Boolean(true))
	_, err := WriteItem(item)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestWriteList(t *testing.T) {
	list := List{
		ItemMember(NewItem(Token("Sec-CH-Example"))),
		ItemMember(NewItem(Token("Sec-CH-Example-2"))),
	}
	out, err := WriteList(list)
	require.NoError(t, err)
	assert.Equal(t, "Sec-CH-Example, Sec-CH-Example-2", string(out))
}

func TestWriteList_Empty(t *testing.T) {
	out, err := WriteList(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWriteList_InnerList(t *testing.T) {
	inner := NewInnerList(NewItem(Integer(1)), NewItem(Integer(2)), NewItem(Integer(3)))
	inner.Params.Put("q", DecimalItem(mustDecimal(t, 9, -1)))

	list := List{InnerListMember(inner), ItemMember(NewItem(Token("last")))}
	out, err := WriteList(list)
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3);q=0.9, last", string(out))
}

func TestWriteDictionary(t *testing.T) {
	dict := NewDictionary()
	dict.Put("a", ItemMember(NewItem(Integer(1))))

	flagged := NewItem(Boolean(true))
	flagged.Params.Put("x", Integer(2))
	dict.Put("b", ItemMember(flagged))

	dict.Put("c", ItemMember(NewItem(Boolean(true))))
	dict.Put("d", ItemMember(NewItem(Boolean(false))))
	dict.Put("e", InnerListMember(NewInnerList(NewItem(Token("x")), NewItem(Token("y")))))

	out, err := WriteDictionary(dict)
	require.NoError(t, err)
	assert.Equal(t, "a=1, b;x=2, c, d=?0, e=(x y)", string(out))
}

func TestWriteDictionary_Empty(t *testing.T) {
	out, err := WriteDictionary(NewDictionary())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWriteDictionary_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "UPPER", "9start", "sp ace"} {
		dict := NewDictionary()
		dict.Put(key, ItemMember(NewItem(Integer(1))))
		_, err := WriteDictionary(dict)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestSerializer_ScratchReuse(t *testing.T) {
	s := NewSerializer()

	first, err := s.WriteItem(NewItem(Token("first-value")))
	require.NoError(t, err)
	second, err := s.WriteItem(NewItem(Integer(2)))
	require.NoError(t, err)

	// Earlier outputs are unaffected by later calls.
	assert.Equal(t, "first-value", string(first))
	assert.Equal(t, "2", string(second))
}

func TestSerializer_ErrorLeavesNoOutput(t *testing.T) {
	s := NewSerializer()
	out, err := s.WriteItem(Item{Bare: Token("not a token")})
	assert.Error(t, err)
	assert.Nil(t, out)

	// The serializer remains usable after a failure.
	out, err = s.WriteItem(NewItem(Integer(7)))
	require.NoError(t, err)
	assert.Equal(t, "7", string(out))
}
