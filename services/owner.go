package services

import (
	"context"
	"sort"
	"time"

	"PGRegistry/db"
	"PGRegistry/logger"
	"PGRegistry/models"
	"PGRegistry/util"

	"go.mongodb.org/mongo-driver/bson"
)

/*
FetchOwnerByMobile is a point read of the owner dataset. A miss and a
read failure both yield nil so the caller clears any selected PG; the
record is cached briefly, it is not a subscription and does not track
later changes to the owner.
*/
func FetchOwnerByMobile(ctx context.Context, mobileNo string) *models.Owner {
	key := util.OwnerKey + mobileNo
	var cached models.Owner
	if hit, err := cacheGet(ctx, key, &cached); err == nil && hit {
		return &cached
	}

	coll := db.OpenCollection(util.OwnerCollection)
	var doc models.OwnerDocument
	if err := coll.FindOne(ctx, bson.M{"mobileNo": mobileNo}).Decode(&doc); err != nil {
		logger.L().Infow("owner lookup miss", "mobileNo", mobileNo, "error", err)
		return nil
	}

	owner := flattenOwner(doc)
	if err := cacheSet(ctx, key, owner, util.OwnerCacheTTLMinutes*time.Minute); err != nil {
		logger.L().Warnw("failed to cache owner", "mobileNo", mobileNo, "error", err)
	}
	return owner
}

// flattenOwner turns the stored PG map into a slice, the map key
// becoming the PG id. Sorted by id so responses are stable.
func flattenOwner(doc models.OwnerDocument) *models.Owner {
	pgs := make([]models.PGDetails, 0, len(doc.Pgs))
	for id, pg := range doc.Pgs {
		pg.Id = id
		pgs = append(pgs, pg)
	}
	sort.Slice(pgs, func(i, j int) bool { return pgs[i].Id < pgs[j].Id })
	return &models.Owner{
		MobileNo: doc.MobileNo,
		Name:     doc.Name,
		Email:    doc.Email,
		Pgs:      pgs,
	}
}
