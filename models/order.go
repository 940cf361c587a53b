package models

// Gateway order statuses. PAID, EXPIRED, CANCELLED and FAILED are
// terminal; ACTIVE means the order is still payable.
const (
	OrderStatusActive    string = "ACTIVE"
	OrderStatusPaid      string = "PAID"
	OrderStatusExpired   string = "EXPIRED"
	OrderStatusCancelled string = "CANCELLED"
	OrderStatusFailed    string = "FAILED"
)

func IsTerminalStatus(status string) bool {
	switch status {
	case OrderStatusPaid, OrderStatusExpired, OrderStatusCancelled, OrderStatusFailed:
		return true
	}
	return false
}

// CustomerDetails is the customer snapshot attached to an order,
// in the gateway's field naming.
type CustomerDetails struct {
	CustomerId    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name"`
}

// CreateOrderRequest is the body accepted by POST /create-order.
type CreateOrderRequest struct {
	OrderId         string          `json:"orderId"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

type OrderMeta struct {
	ReturnUrl string `json:"return_url"`
	NotifyUrl string `json:"notify_url,omitempty"`
}

// GatewayOrderRequest is the create-order payload forwarded to the
// payment gateway.
type GatewayOrderRequest struct {
	OrderId         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       OrderMeta       `json:"order_meta"`
}

// GatewayOrder is the gateway's order payload, passed through to
// clients verbatim on verification.
type GatewayOrder struct {
	OrderId          string  `json:"order_id"`
	OrderAmount      float64 `json:"order_amount"`
	OrderCurrency    string  `json:"order_currency"`
	OrderStatus      string  `json:"order_status"`
	PaymentSessionId string  `json:"payment_session_id"`
}

// PaymentSession is what a successful submission hands back to the
// client to start checkout with.
type PaymentSession struct {
	OrderId          string `json:"orderId"`
	PaymentSessionId string `json:"paymentSessionId"`
}
