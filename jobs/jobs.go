package jobs

import (
	"context"
	"encoding/json"
	"os"

	"PGRegistry/db"
	"PGRegistry/logger"
	"PGRegistry/models"
	"PGRegistry/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// Relative to the service working directory.
var seedFile = "seed/address_reference.json"

// StartDailyScheduler re-runs the reference seed shortly after
// midnight so edits to the seed file roll out daily.
func StartDailyScheduler() {
	c := cron.New()

	c.AddFunc("15 0 * * *", func() {
		logger.L().Infow("running daily address reference refresh")
		SeedAddressReference()
	})

	c.Start()
}

/*
SeedAddressReference idempotently loads the state → district → police
station hierarchy from the JSON seed file. Only missing (state,
district) pairs are inserted; existing documents are left untouched.
*/
func SeedAddressReference() {
	refs := loadAddressSeed()
	if len(refs) == 0 {
		return
	}
	coll := db.OpenCollection(util.AddressReferenceCollection)

	for _, ref := range refs {
		filter := bson.M{"state": ref.State, "district": ref.District}

		count, err := coll.CountDocuments(context.Background(), filter)
		if err != nil {
			logger.L().Errorw("failed to check address reference", "state", ref.State, "district", ref.District, "error", err)
			continue
		}
		if count > 0 {
			continue
		}
		if _, err := coll.InsertOne(context.Background(), ref); err != nil {
			logger.L().Errorw("failed to seed address reference", "state", ref.State, "district", ref.District, "error", err)
		}
	}
}

// loadAddressSeed reads the hierarchy from the seed file. An
// unreadable or malformed file skips the seed run; it never aborts
// startup.
func loadAddressSeed() []models.AddressReference {
	data, err := os.ReadFile(seedFile)
	if err != nil {
		logger.L().Errorw("failed to read address reference seed", "file", seedFile, "error", err)
		return nil
	}
	var refs []models.AddressReference
	if err := json.Unmarshal(data, &refs); err != nil {
		logger.L().Errorw("malformed address reference seed", "file", seedFile, "error", err)
		return nil
	}
	return refs
}
