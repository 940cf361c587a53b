package util

// Mongo collections
const (
	TenantCollection           string = "TENANTS"
	OwnerCollection            string = "OWNERS"
	AddressReferenceCollection string = "ADDRESS_REFERENCE"
)

// Redis key prefixes
const (
	OwnerKey        string = "owner:"
	DraftDataKey    string = "draft:data:"
	DraftPreviewKey string = "draft:preview:"
	PendingRegKey   string = "registration:pending:"
)

// Registration fee charged by every order, in INR.
const RegistrationFeeINR float64 = 250

// Lifetimes of cached state
const (
	DraftTTLDays         = 7
	PendingRegTTLMinutes = 30
	OwnerCacheTTLMinutes = 5
)
