package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchFilter builds a case-insensitive substring match across the given
// fields, combined with $or. Returns nil for an empty term.
func SearchFilter(term string, fields ...string) bson.M {
	if term == "" || len(fields) == 0 {
		return nil
	}
	clauses := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, bson.M{
			field: bson.M{"$regex": primitive.Regex{Pattern: term, Options: "i"}},
		})
	}
	return bson.M{"$or": clauses}
}

// MergeFilters combines filter maps with $and semantics. Nil and empty maps
// are skipped so callers can pass optional clauses unconditionally.
func MergeFilters(filters ...bson.M) bson.M {
	merged := bson.M{}
	var clauses []bson.M
	for _, f := range filters {
		if len(f) == 0 {
			continue
		}
		if _, hasOr := f["$or"]; hasOr {
			clauses = append(clauses, f)
			continue
		}
		for k, v := range f {
			merged[k] = v
		}
	}
	if len(clauses) > 0 {
		if len(merged) > 0 {
			clauses = append(clauses, merged)
		}
		if len(clauses) == 1 {
			return clauses[0]
		}
		return bson.M{"$and": clauses}
	}
	return merged
}

// listOptions builds the find options for a paginated listing.
func listOptions(skip, limit int64, sortField string, ascending bool) *options.FindOptions {
	order := -1
	if ascending {
		order = 1
	}
	return options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: sortField, Value: order}})
}
