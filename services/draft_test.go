package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"PGRegistry/models"
	"PGRegistry/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePreview = "data:image/png;base64,iVBORw0KGgo="

// fakeCache backs the cache seams with an in-memory map, the same way
// main_test.go intercepts startServer.
type fakeCache struct {
	store   map[string][]byte
	failOn  map[string]bool
	deleted []string
}

func installFakeCache(t *testing.T) *fakeCache {
	t.Helper()
	f := &fakeCache{
		store:  map[string][]byte{},
		failOn: map[string]bool{},
	}
	oldSet, oldGet, oldDel := cacheSet, cacheGet, cacheDel
	cacheSet = func(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
		if f.failOn[key] {
			return errors.New("write refused")
		}
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		f.store[key] = b
		return nil
	}
	cacheGet = func(ctx context.Context, key string, dest interface{}) (bool, error) {
		b, ok := f.store[key]
		if !ok {
			return false, nil
		}
		return true, json.Unmarshal(b, dest)
	}
	cacheDel = func(ctx context.Context, keys ...string) error {
		for _, k := range keys {
			delete(f.store, k)
			f.deleted = append(f.deleted, k)
		}
		return nil
	}
	t.Cleanup(func() { cacheSet, cacheGet, cacheDel = oldSet, oldGet, oldDel })
	return f
}

func (f *fakeCache) put(t *testing.T, key string, value interface{}) {
	t.Helper()
	b, err := json.Marshal(value)
	require.NoError(t, err)
	f.store[key] = b
}

func sampleForm() models.DraftForm {
	return models.DraftForm{
		SessionId: "sess-1",
		Personal: models.PersonalInfo{
			Name:     "Rakesh Kumar",
			MobileNo: "9876543210",
			Email:    "rakesh@example.com",
		},
		PresentAddress: models.PresentAddress{
			OwnerMobile: "9123456780",
			PgId:        "PG-01",
			PgName:      "Sunrise PG",
		},
		PermanentAddress: models.PermanentAddress{
			State:         "West Bengal",
			District:      "Kolkata",
			PoliceStation: "Gariahat",
			Pincode:       "700019",
		},
		Documents: models.DocumentSet{
			IdType:   "Aadhaar",
			IdNumber: "1234-5678-9012",
		},
		TermsAccepted: true,
	}
}

func TestSplitDraftSeparatesPreviews(t *testing.T) {
	form := sampleForm()
	form.Documents.Photo = samplePreview
	form.Documents.IdScanFront = samplePreview

	data, previews := splitDraft(form)

	assert.Empty(t, data.Documents.Photo)
	assert.Empty(t, data.Documents.IdScanFront)
	assert.Empty(t, data.Documents.IdScanBack)
	assert.Equal(t, samplePreview, previews["photo"])
	assert.Equal(t, samplePreview, previews["idScanFront"])
	assert.NotContains(t, previews, "idScanBack")
	// non-binary document fields stay in the data slot
	assert.Equal(t, "Aadhaar", data.Documents.IdType)
}

func TestDraftRoundTripPreservesPreviews(t *testing.T) {
	form := sampleForm()
	form.Documents.Photo = samplePreview
	form.Documents.IdScanBack = samplePreview

	merged := mergeDraft(splitDraft(form))

	assert.Equal(t, form, merged)
}

func TestSaveThenLoadDraftThroughCache(t *testing.T) {
	installFakeCache(t)
	ctx := context.Background()
	form := sampleForm()
	form.Documents.Photo = samplePreview

	SaveDraft(ctx, "sess-1", form)
	loaded := LoadDraft(ctx, "sess-1")

	require.NotNil(t, loaded)
	assert.Equal(t, form, *loaded)
}

func TestLoadDraftMissingSession(t *testing.T) {
	installFakeCache(t)

	assert.Nil(t, LoadDraft(context.Background(), "sess-unknown"))
}

func TestClearDraftRemovesBothSlots(t *testing.T) {
	f := installFakeCache(t)
	ctx := context.Background()
	form := sampleForm()
	form.Documents.Photo = samplePreview
	SaveDraft(ctx, "sess-1", form)

	ClearDraft(ctx, "sess-1")

	assert.Empty(t, f.store)
	assert.Nil(t, LoadDraft(ctx, "sess-1"))
}

func TestSaveDraftDropsPreviewSlotOnPartialFailure(t *testing.T) {
	f := installFakeCache(t)
	ctx := context.Background()

	// an earlier save left previews behind
	older := sampleForm()
	older.Documents.Photo = samplePreview
	SaveDraft(ctx, "sess-1", older)

	// the next save lands its data slot but not its preview slot
	f.failOn[util.DraftPreviewKey+"sess-1"] = true
	newer := sampleForm()
	newer.Personal.Name = "Rakesh K. Kumar"
	newer.Documents.Photo = "data:image/png;base64,bmV3ZXI="
	SaveDraft(ctx, "sess-1", newer)

	// the stale previews must not merge into the newer data
	loaded := LoadDraft(ctx, "sess-1")
	require.NotNil(t, loaded)
	assert.Equal(t, "Rakesh K. Kumar", loaded.Personal.Name)
	assert.Empty(t, loaded.Documents.Photo)
	assert.Contains(t, f.deleted, util.DraftPreviewKey+"sess-1")
}

func TestDraftRoundTripDropsNonPreviewValues(t *testing.T) {
	form := sampleForm()
	// a public URL in a preview-capable field is not an inline image
	// marker and is reset to empty on reload
	form.Documents.Photo = "https://cdn.example.com/photo.jpg"

	merged := mergeDraft(splitDraft(form))

	assert.Empty(t, merged.Documents.Photo)
	expected := form
	expected.Documents.Photo = ""
	assert.Equal(t, expected, merged)
}
