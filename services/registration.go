package services

import (
	"context"
	"errors"
	"time"

	"PGRegistry/db"
	"PGRegistry/logger"
	"PGRegistry/models"
	"PGRegistry/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
Registration workflow: a submitted draft is validated, its inline
document images are uploaded and swapped for public URLs, an order is
created with the gateway, and the frozen snapshot is parked keyed by
order id. Verification completes the flow: only a PAID order writes
the tenant record.
*/

var persistTenant = saveTenant

// SubmitRegistration moves a draft from Editing through Submitting
// into PaymentPending and returns the checkout session.
func SubmitRegistration(ctx context.Context, form *models.DraftForm) (*models.PaymentSession, error) {
	if !form.TermsAccepted {
		return nil, errors.New(util.ERR_TERMS_NOT_ACCEPTED)
	}
	if form.PresentAddress.PgId == "" {
		return nil, errors.New(util.ERR_PG_NOT_SELECTED)
	}

	// Upload failures block submission; the user retries explicitly.
	if err := substituteDocumentURLs(ctx, form); err != nil {
		logger.L().Errorw("document upload failed during submit", "error", err)
		return nil, err
	}

	pending := models.PendingRegistration{
		State:     models.StateSubmitting,
		Form:      *form,
		CreatedAt: time.Now().UTC(),
	}

	customer := models.CustomerDetails{
		CustomerId:    form.Personal.MobileNo,
		CustomerEmail: form.Personal.Email,
		CustomerPhone: form.Personal.MobileNo,
		CustomerName:  form.Personal.Name,
	}
	order, err := Gateway().CreateOrder(ctx, "", customer)
	if err != nil {
		return nil, err
	}

	// Checkout opens once the snapshot is parked under the order id.
	pending.OrderId = order.OrderId
	pending.State = models.StatePaymentPending
	ttl := util.PendingRegTTLMinutes * time.Minute
	if err := cacheSet(ctx, util.PendingRegKey+order.OrderId, pending, ttl); err != nil {
		logger.L().Errorw("failed to park pending registration", "orderId", order.OrderId, "error", err)
		return nil, err
	}

	return &models.PaymentSession{
		OrderId:          order.OrderId,
		PaymentSessionId: order.PaymentSessionId,
	}, nil
}

/*
ConfirmRegistration checks the order with the gateway. Only the
literal status PAID completes the registration; every other status
collapses into one generic failure outcome carrying the raw status
for diagnosis. No retry or polling.
*/
func ConfirmRegistration(ctx context.Context, orderId string) (*models.RegistrationOutcome, error) {
	if orderId == "" {
		return nil, errors.New(util.ERR_NO_ORDER_ID)
	}

	order, err := Gateway().GetOrder(ctx, orderId)
	if err != nil {
		return nil, err
	}

	if order.OrderStatus != models.OrderStatusPaid {
		if models.IsTerminalStatus(order.OrderStatus) {
			logger.L().Infow("payment failed", "orderId", orderId, "status", order.OrderStatus)
		} else {
			logger.L().Infow("payment not confirmed yet", "orderId", orderId, "status", order.OrderStatus)
		}
		return &models.RegistrationOutcome{
			Success:     false,
			OrderId:     orderId,
			OrderStatus: order.OrderStatus,
			Message:     util.ERR_PAYMENT_NOT_CONFIRMED,
		}, nil
	}

	var pending models.PendingRegistration
	hit, err := cacheGet(ctx, util.PendingRegKey+orderId, &pending)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, errors.New(util.ERR_PENDING_NOT_FOUND)
	}

	if err := persistTenant(ctx, pending.Form); err != nil {
		logger.L().Errorw("failed to persist tenant after payment", "orderId", orderId, "error", err)
		return nil, err
	}

	pending.State = models.StateCompleted
	if pending.Form.SessionId != "" {
		ClearDraft(ctx, pending.Form.SessionId)
	}
	if err := cacheDel(ctx, util.PendingRegKey+orderId); err != nil {
		logger.L().Warnw("failed to drop pending registration", "orderId", orderId, "error", err)
	}

	logger.L().Infow("registration completed", "orderId", orderId, "tenantMobile", pending.Form.Personal.MobileNo, "state", pending.State)
	return &models.RegistrationOutcome{
		Success:     true,
		OrderId:     orderId,
		OrderStatus: order.OrderStatus,
		Message:     "Registration successful.",
		RedirectTo:  "/",
	}, nil
}

/*
CancelPayment re-enters Editing after the checkout modal is closed.
The pending snapshot stays until its TTL; the gateway session is not
voided.
*/
func CancelPayment(ctx context.Context, orderId string) error {
	if orderId == "" {
		return errors.New(util.ERR_NO_ORDER_ID)
	}
	var pending models.PendingRegistration
	hit, err := cacheGet(ctx, util.PendingRegKey+orderId, &pending)
	if err != nil || !hit {
		// Nothing to roll back; the client re-enables the form either way.
		return nil
	}
	pending.State = models.StateEditing
	ttl := util.PendingRegTTLMinutes * time.Minute
	if err := cacheSet(ctx, util.PendingRegKey+orderId, pending, ttl); err != nil {
		logger.L().Warnw("failed to mark pending registration as editing", "orderId", orderId, "error", err)
	}
	return nil
}

/*
substituteDocumentURLs is the explicit point where inline previews
become stored blobs: any document field still holding a data-URL is
uploaded and the public URL written back, so the tenant record never
carries base64 payloads.
*/
func substituteDocumentURLs(ctx context.Context, form *models.DraftForm) error {
	fields := []struct {
		value *string
		name  string
	}{
		{&form.Documents.Photo, "photo"},
		{&form.Documents.IdScanFront, "id-front"},
		{&form.Documents.IdScanBack, "id-back"},
	}
	for _, f := range fields {
		if !IsInlineImage(*f.value) {
			continue
		}
		data, contentType, err := DecodeDataURL(*f.value)
		if err != nil {
			return err
		}
		url, err := Upload(ctx, data, contentType, f.name+extensionFor(contentType), "tenant-documents")
		if err != nil {
			return err
		}
		*f.value = url
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

/*
saveTenant upserts the record under its (ownerMobile, pgId,
tenantMobile) key. Last write wins, no merge; the record is never
touched again by this service.
*/
func saveTenant(ctx context.Context, form models.DraftForm) error {
	tenant := form.ToTenant()
	coll := db.OpenCollection(util.TenantCollection)
	filter := bson.M{
		"presentAddress.ownerMobile": tenant.PresentAddress.OwnerMobile,
		"presentAddress.pgId":        tenant.PresentAddress.PgId,
		"personal.mobileNo":          tenant.Personal.MobileNo,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, filter, tenant, opts)
	return err
}
