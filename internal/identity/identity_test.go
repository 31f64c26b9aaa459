package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", "3f2504e0-4f89-41d3-9a0c-0305e82c3301", false},
		{"uppercase", "3F2504E0-4F89-41D3-9A0C-0305E82C3301", true},
		{"mixed case", "3f2504e0-4f89-41d3-9a0c-0305E82C3301", true},
		{"empty", "", true},
		{"no hyphens", "3f2504e04f8941d39a0c0305e82c3301", true},
		{"braces", "{3f2504e0-4f89-41d3-9a0c-0305e82c3301}", true},
		{"urn", "urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301", true},
		{"bad hex", "zz2504e0-4f89-41d3-9a0c-0305e82c3301", true},
		{"object id", "507f1f77bcf86cd799439011", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedIdentifier)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, String(id))
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := New().String()
		id, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, String(id))
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		b := Binary(id)
		assert.Equal(t, SubtypeIdentifier, b.Subtype)
		assert.Len(t, b.Data, 16)

		back, err := FromBinary(b)
		require.NoError(t, err)
		assert.Equal(t, id, back)
		assert.Equal(t, b, Binary(back))
	}
}

func TestBinary_DoesNotAliasIdentifier(t *testing.T) {
	id := New()
	b := Binary(id)
	b.Data[0] ^= 0xff
	assert.NotEqual(t, id[0], b.Data[0])
}

func TestFromBinary_Malformed(t *testing.T) {
	id := New()
	tests := []struct {
		name string
		bin  primitive.Binary
	}{
		{"short", primitive.Binary{Subtype: SubtypeIdentifier, Data: id[:8]}},
		{"long", primitive.Binary{Subtype: SubtypeIdentifier, Data: append(id[:], 0x01)}},
		{"md5 subtype", primitive.Binary{Subtype: 0x05, Data: id[:]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBinary(tt.bin)
			assert.ErrorIs(t, err, ErrMalformedIdentifier)
		})
	}
}

func TestFromBinary_LegacySubtypes(t *testing.T) {
	id := New()
	for _, subtype := range []byte{0x00, 0x03, 0x04} {
		got, err := FromBinary(primitive.Binary{Subtype: subtype, Data: id[:]})
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestCodec_Value(t *testing.T) {
	id := New()

	assert.Equal(t, Binary(id), Codec{Encoding: EncodingBinary}.Value(id))
	assert.Equal(t, id.String(), Codec{Encoding: EncodingString}.Value(id))
}

func TestCodec_Match(t *testing.T) {
	id := New()

	strict := Codec{Encoding: EncodingBinary}
	assert.Equal(t, Binary(id), strict.Match(id))

	legacy := Codec{Encoding: EncodingBinary, LegacyReads: true}
	assert.Equal(t, bson.M{"$in": bson.A{Binary(id), id.String()}}, legacy.Match(id))
}

func TestCodec_Values(t *testing.T) {
	a, b := New(), New()
	got := Codec{Encoding: EncodingString}.Values([]uuid.UUID{a, b})
	assert.Equal(t, bson.A{a.String(), b.String()}, got)
}

type doc struct {
	ID     uuid.UUID   `bson:"id"`
	Owners []uuid.UUID `bson:"owners"`
	Ref    *uuid.UUID  `bson:"ref,omitempty"`
}

func TestRegistry_RoundTrip(t *testing.T) {
	for _, enc := range []Encoding{EncodingBinary, EncodingString} {
		t.Run(enc.String(), func(t *testing.T) {
			reg := Registry(enc)
			ref := New()
			in := doc{ID: New(), Owners: []uuid.UUID{New(), New()}, Ref: &ref}

			raw, err := bson.MarshalWithRegistry(reg, in)
			require.NoError(t, err)

			var out doc
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestRegistry_WritesConfiguredEncoding(t *testing.T) {
	id := New()

	raw, err := bson.MarshalWithRegistry(Registry(EncodingBinary), doc{ID: id})
	require.NoError(t, err)
	subtype, data := bson.Raw(raw).Lookup("id").Binary()
	assert.Equal(t, SubtypeIdentifier, subtype)
	assert.Equal(t, id[:], data)

	raw, err = bson.MarshalWithRegistry(Registry(EncodingString), doc{ID: id})
	require.NoError(t, err)
	assert.Equal(t, id.String(), bson.Raw(raw).Lookup("id").StringValue())
}

func TestRegistry_ReadsEitherEncoding(t *testing.T) {
	id := New()
	reg := Registry(EncodingBinary)

	for name, value := range map[string]interface{}{
		"string":        id.String(),
		"binary":        Binary(id),
		"binary uuid":   primitive.Binary{Subtype: 0x04, Data: id[:]},
		"binary legacy": primitive.Binary{Subtype: 0x00, Data: id[:]},
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"id": value})
			require.NoError(t, err)

			var out doc
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
			assert.Equal(t, id, out.ID)
		})
	}
}

func TestRegistry_NilIsNull(t *testing.T) {
	raw, err := bson.MarshalWithRegistry(Registry(EncodingBinary), doc{})
	require.NoError(t, err)
	assert.Equal(t, bson.TypeNull, bson.Raw(raw).Lookup("id").Type)

	var out doc
	require.NoError(t, bson.UnmarshalWithRegistry(Registry(EncodingBinary), raw, &out))
	assert.Equal(t, uuid.Nil, out.ID)
}

func TestRegistry_RejectsMalformedString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"id": "not-an-id"})
	require.NoError(t, err)

	var out doc
	err = bson.UnmarshalWithRegistry(Registry(EncodingString), raw, &out)
	assert.Error(t, err)
}
