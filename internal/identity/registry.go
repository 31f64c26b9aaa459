package identity

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var tUUID = reflect.TypeOf(uuid.UUID{})

// Registry returns a BSON registry that writes uuid.UUID fields in enc and reads
// them back from either encoding. uuid.Nil is stored as null.
func Registry(enc Encoding) *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tUUID, uuidEncoder(enc))
	reg.RegisterTypeDecoder(tUUID, bsoncodec.ValueDecoderFunc(decodeUUID))
	return reg
}

// Registry returns the BSON registry for the codec's encoding.
func (c Codec) Registry() *bsoncodec.Registry {
	return Registry(c.Encoding)
}

func uuidEncoder(enc Encoding) bsoncodec.ValueEncoderFunc {
	return func(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
		if !val.IsValid() || val.Type() != tUUID {
			return bsoncodec.ValueEncoderError{Name: "uuidEncoder", Types: []reflect.Type{tUUID}, Received: val}
		}
		id := val.Interface().(uuid.UUID)
		if id == uuid.Nil {
			return vw.WriteNull()
		}
		if enc == EncodingString {
			return vw.WriteString(String(id))
		}
		return vw.WriteBinaryWithSubtype(id[:], SubtypeIdentifier)
	}
}

func decodeUUID(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tUUID {
		return bsoncodec.ValueDecoderError{Name: "decodeUUID", Types: []reflect.Type{tUUID}, Received: val}
	}

	var (
		id  uuid.UUID
		err error
	)
	switch vr.Type() {
	case bsontype.Binary:
		data, subtype, rerr := vr.ReadBinary()
		if rerr != nil {
			return rerr
		}
		id, err = fromBytes(data, subtype)
	case bsontype.String:
		s, rerr := vr.ReadString()
		if rerr != nil {
			return rerr
		}
		id, err = Parse(s)
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		id = uuid.Nil
	case bsontype.Undefined:
		if err := vr.ReadUndefined(); err != nil {
			return err
		}
		id = uuid.Nil
	default:
		return fmt.Errorf("%w: cannot decode %v into identifier", ErrMalformedIdentifier, vr.Type())
	}
	if err != nil {
		return err
	}

	val.Set(reflect.ValueOf(id))
	return nil
}
