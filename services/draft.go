package services

import (
	"context"
	"time"

	"PGRegistry/cache"
	"PGRegistry/logger"
	"PGRegistry/models"
	"PGRegistry/util"
)

/*
Draft persistence keeps a form-in-progress in two slots: a data slot
with the inline image fields blanked, and a preview slot holding only
fields that carry an inline image data-URL. The split keeps oversized
base64 blobs out of the main record. Saves are fire-and-forget.
*/

var (
	cacheSet = cache.SetCache
	cacheGet = cache.GetCache
	cacheDel = cache.DeleteCache
)

// SaveDraft stores the draft. Errors are logged, never surfaced.
func SaveDraft(ctx context.Context, sessionId string, form models.DraftForm) {
	data, previews := splitDraft(form)
	ttl := util.DraftTTLDays * 24 * time.Hour
	if err := cacheSet(ctx, util.DraftDataKey+sessionId, data, ttl); err != nil {
		logger.L().Errorw("failed to save draft data", "sessionId", sessionId, "error", err)
		return
	}
	if err := cacheSet(ctx, util.DraftPreviewKey+sessionId, previews, ttl); err != nil {
		logger.L().Errorw("failed to save draft previews", "sessionId", sessionId, "error", err)
		// Drop the slot so a later load degrades to empty previews
		// instead of merging previews from an older save.
		if derr := cacheDel(ctx, util.DraftPreviewKey+sessionId); derr != nil {
			logger.L().Errorw("failed to drop stale draft previews", "sessionId", sessionId, "error", derr)
		}
	}
}

// LoadDraft merges the two slots back. Returns nil when no draft exists.
func LoadDraft(ctx context.Context, sessionId string) *models.DraftForm {
	var data models.DraftForm
	hit, err := cacheGet(ctx, util.DraftDataKey+sessionId, &data)
	if err != nil {
		logger.L().Errorw("failed to load draft data", "sessionId", sessionId, "error", err)
		return nil
	}
	if !hit {
		return nil
	}
	previews := map[string]string{}
	if _, err := cacheGet(ctx, util.DraftPreviewKey+sessionId, &previews); err != nil {
		logger.L().Warnw("failed to load draft previews", "sessionId", sessionId, "error", err)
	}
	merged := mergeDraft(data, previews)
	return &merged
}

func ClearDraft(ctx context.Context, sessionId string) {
	err := cacheDel(ctx, util.DraftDataKey+sessionId, util.DraftPreviewKey+sessionId)
	if err != nil {
		logger.L().Errorw("failed to clear draft", "sessionId", sessionId, "error", err)
	}
}

// Preview-capable document fields, addressed by stable slot names.
const (
	previewFieldPhoto       = "photo"
	previewFieldIdScanFront = "idScanFront"
	previewFieldIdScanBack  = "idScanBack"
)

/*
splitDraft blanks the three preview-capable document fields in the
returned data copy and collects those holding a recognized inline
image marker into the preview map. A preview-capable field holding
anything else is dropped on purpose: it is reset to "" on merge.
*/
func splitDraft(form models.DraftForm) (models.DraftForm, map[string]string) {
	previews := map[string]string{}
	collect := func(field string, value string) {
		if IsInlineImage(value) {
			previews[field] = value
		}
	}
	collect(previewFieldPhoto, form.Documents.Photo)
	collect(previewFieldIdScanFront, form.Documents.IdScanFront)
	collect(previewFieldIdScanBack, form.Documents.IdScanBack)

	form.Documents.Photo = ""
	form.Documents.IdScanFront = ""
	form.Documents.IdScanBack = ""
	return form, previews
}

func mergeDraft(data models.DraftForm, previews map[string]string) models.DraftForm {
	data.Documents.Photo = previews[previewFieldPhoto]
	data.Documents.IdScanFront = previews[previewFieldIdScanFront]
	data.Documents.IdScanBack = previews[previewFieldIdScanBack]
	return data
}
