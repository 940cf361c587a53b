package util

// User-facing error messages. The terms and PG messages are shown
// inline in the registration form and must not be reworded here
// without updating the frontend copy.
const (
	ERR_TERMS_NOT_ACCEPTED      string = "Please accept the Terms & Conditions to proceed."
	ERR_PG_NOT_SELECTED         string = "Please select a PG."
	ERR_NO_ORDER_ID             string = "no order id"
	ERR_MISSING_ORDER_ID_PARAM  string = "orderId query parameter is required"
	ERR_MISSING_REQUEST_BODY    string = "missing request body"
	ERR_METHOD_NOT_ALLOWED      string = "method not allowed"
	ERR_INVALID_PAYMENT_SESSION string = "invalid payment session received from gateway"
	ERR_PENDING_NOT_FOUND       string = "no pending registration found for this order"
	ERR_PAYMENT_NOT_CONFIRMED   string = "Payment could not be confirmed. Please try again or contact support."
	ERR_NOT_AN_IMAGE            string = "only image files are allowed"
	ERR_FILE_TOO_LARGE          string = "file size must not exceed 1 MB"
	ERR_INVALID_MOBILE_NO       string = "mobile number must be exactly 10 digits"
	ERR_FILE_NOT_FOUND          string = "file not found"
)
