package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StringifyID replaces a document's ObjectID _id with its hex form so that
// identities cross the store boundary as plain strings.
func StringifyID(doc bson.M) bson.M {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}

func stringifyAll(docs []bson.M) []bson.M {
	for i := range docs {
		docs[i] = StringifyID(docs[i])
	}
	return docs
}

// AnchoredCaseInsensitive builds a regex matching the literal value as a
// whole string, ignoring case. Used for the category filter so that
// "design" and "DESIGN" match "Design" but "des" does not.
func AnchoredCaseInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}
