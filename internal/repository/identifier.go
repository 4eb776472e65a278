package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Identifier normalizes one caller-supplied id string against the two _id
// representations that coexist in the database: the native ObjectID and the
// same 24-hex value stored as a plain string. It is resolved once and then
// projected into whichever filter the entity's key convention calls for.
type Identifier struct {
	raw   string
	oid   bson.ObjectID
	isHex bool
}

func ResolveIdentifier(raw string) Identifier {
	id := Identifier{raw: raw}
	if oid, err := bson.ObjectIDFromHex(raw); err == nil {
		id.oid = oid
		id.isHex = true
	}
	return id
}

// Filter matches records keyed by either representation. Historical records
// are not guaranteed to use one form consistently, so a hex id has to try
// both. Malformed input degrades to a literal string match and never errors.
func (id Identifier) Filter() bson.M {
	if id.isHex {
		return bson.M{"$or": bson.A{
			bson.M{"_id": id.oid},
			bson.M{"_id": id.raw},
		}}
	}
	return bson.M{"_id": id.raw}
}

// NativeFilter matches only the native ObjectID form. Entities keyed by
// ObjectID exclusively (sessions, tasks) fail fast on malformed input so a
// bad id stays distinguishable from a well-formed but absent one.
func (id Identifier) NativeFilter() (bson.M, error) {
	if !id.isHex {
		return nil, ErrInvalidIdentifier
	}
	return bson.M{"_id": id.oid}, nil
}
