package models

import "time"

// Registration workflow states.
const (
	StateEditing        string = "EDITING"
	StateSubmitting     string = "SUBMITTING"
	StatePaymentPending string = "PAYMENT_PENDING"
	StateCompleted      string = "COMPLETED"
)

/*
DraftForm is the tenant record in progress plus UI-only fields. It is
what the client autosaves on every change and what it posts on final
submission.
*/
type DraftForm struct {
	SessionId        string           `json:"sessionId"`
	Personal         PersonalInfo     `json:"personal"`
	FamilyReference  FamilyReference  `json:"familyReference"`
	PresentAddress   PresentAddress   `json:"presentAddress"`
	PermanentAddress PermanentAddress `json:"permanentAddress"`
	Documents        DocumentSet      `json:"documents"`
	TermsAccepted    bool             `json:"termsAccepted"`
}

// ToTenant freezes the draft into the record persisted after payment.
func (f *DraftForm) ToTenant() Tenant {
	return Tenant{
		Personal:         f.Personal,
		FamilyReference:  f.FamilyReference,
		PresentAddress:   f.PresentAddress,
		PermanentAddress: f.PermanentAddress,
		Documents:        f.Documents,
		RegisteredAt:     time.Now().UTC(),
	}
}

/*
PendingRegistration is the snapshot parked between order creation and
payment verification, keyed by order id. It expires with the payment
session; a verification arriving after expiry cannot complete.
*/
type PendingRegistration struct {
	OrderId   string    `json:"orderId"`
	State     string    `json:"state"`
	Form      DraftForm `json:"form"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegistrationOutcome is the result of payment verification shown to
// the user.
type RegistrationOutcome struct {
	Success     bool   `json:"success"`
	OrderId     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
	Message     string `json:"message"`
	RedirectTo  string `json:"redirectTo,omitempty"`
}
