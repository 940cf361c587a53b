package services

import (
	"context"
	"sort"

	"PGRegistry/db"
	"PGRegistry/logger"
	"PGRegistry/models"
	"PGRegistry/util"

	"go.mongodb.org/mongo-driver/bson"
)

/*
The address hierarchy is read-only reference data. Lookup failures are
logged and degrade to empty lists so dropdowns render empty instead of
erroring; no caching, every cascading change re-reads.
*/

func ListStates(ctx context.Context) []string {
	coll := db.OpenCollection(util.AddressReferenceCollection)
	raw, err := coll.Distinct(ctx, "state", bson.M{})
	if err != nil {
		logger.L().Errorw("failed to list states", "error", err)
		return []string{}
	}
	return toSortedStrings(raw)
}

func ListDistricts(ctx context.Context, state string) []string {
	coll := db.OpenCollection(util.AddressReferenceCollection)
	raw, err := coll.Distinct(ctx, "district", bson.M{"state": state})
	if err != nil {
		logger.L().Errorw("failed to list districts", "state", state, "error", err)
		return []string{}
	}
	return toSortedStrings(raw)
}

func ListPoliceStations(ctx context.Context, state string, district string) []string {
	coll := db.OpenCollection(util.AddressReferenceCollection)
	var ref models.AddressReference
	err := coll.FindOne(ctx, bson.M{"state": state, "district": district}).Decode(&ref)
	if err != nil {
		// Covers both an absent (state, district) pair and a read failure.
		logger.L().Debugw("no police stations found", "state", state, "district", district, "error", err)
		return []string{}
	}
	if ref.PoliceStations == nil {
		return []string{}
	}
	return ref.PoliceStations
}

func toSortedStrings(raw []interface{}) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
