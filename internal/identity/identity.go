// Package identity converts entity identifiers between their canonical
// uuid.UUID value and the string and BSON binary forms used on the wire and in storage.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubtypeIdentifier is the application-defined BSON binary subtype identifiers are stored with.
const SubtypeIdentifier byte = bsontype.BinaryUserDefined

// canonicalLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalLength = 36

// ErrMalformedIdentifier is returned when a string or binary value is not a valid identifier.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// Encoding selects the physical representation of identifiers in a collection.
type Encoding int

const (
	// EncodingBinary stores identifiers as 16-byte BSON binary with SubtypeIdentifier.
	EncodingBinary Encoding = iota
	// EncodingString stores identifiers as their canonical string form.
	EncodingString
)

func (e Encoding) String() string {
	switch e {
	case EncodingBinary:
		return "binary"
	case EncodingString:
		return "string"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// New returns a fresh random identifier.
func New() uuid.UUID {
	return uuid.New()
}

// Parse decodes the canonical string form of an identifier.
// Only the lowercase hyphenated form is accepted, so String(id) == s on success.
func Parse(s string) (uuid.UUID, error) {
	if len(s) != canonicalLength || s != strings.ToLower(s) {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrMalformedIdentifier, s)
	}
	return id, nil
}

// String returns the canonical lowercase string form of id.
func String(id uuid.UUID) string {
	return id.String()
}

// Binary returns id as BSON binary tagged with SubtypeIdentifier.
func Binary(id uuid.UUID) primitive.Binary {
	data := make([]byte, len(id))
	copy(data, id[:])
	return primitive.Binary{Subtype: SubtypeIdentifier, Data: data}
}

// FromBinary decodes a BSON binary identifier. Besides SubtypeIdentifier it accepts
// the standard UUID subtypes and generic binary so data written by older clients still reads.
func FromBinary(b primitive.Binary) (uuid.UUID, error) {
	return fromBytes(b.Data, b.Subtype)
}

func fromBytes(data []byte, subtype byte) (uuid.UUID, error) {
	switch subtype {
	case SubtypeIdentifier, bsontype.BinaryUUID, bsontype.BinaryUUIDOld, bsontype.BinaryGeneric:
	default:
		return uuid.Nil, fmt.Errorf("%w: unexpected binary subtype 0x%02x", ErrMalformedIdentifier, subtype)
	}
	id, err := uuid.FromBytes(data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %d bytes", ErrMalformedIdentifier, len(data))
	}
	return id, nil
}

// Codec produces storage query values for one collection.
type Codec struct {
	Encoding Encoding
	// LegacyReads makes Match accept both encodings, for collections holding
	// documents written before the binary encoding became canonical.
	LegacyReads bool
}

// Value returns id in the collection's storage encoding.
func (c Codec) Value(id uuid.UUID) interface{} {
	if c.Encoding == EncodingString {
		return String(id)
	}
	return Binary(id)
}

// Match returns a filter value matching id. With LegacyReads it matches either encoding.
func (c Codec) Match(id uuid.UUID) interface{} {
	if !c.LegacyReads {
		return c.Value(id)
	}
	return bson.M{"$in": bson.A{Binary(id), String(id)}}
}

// Values encodes ids for storage, e.g. in an array field.
func (c Codec) Values(ids []uuid.UUID) bson.A {
	out := make(bson.A, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.Value(id))
	}
	return out
}
