package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"PGRegistry/models"
	"PGRegistry/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIdPattern = regexp.MustCompile(`^TRF-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func testCustomer() models.CustomerDetails {
	return models.CustomerDetails{
		CustomerId:    "9876543210",
		CustomerEmail: "tenant@example.com",
		CustomerPhone: "9876543210",
		CustomerName:  "Test Tenant",
	}
}

func TestNewOrderIdDistinctAndPatterned(t *testing.T) {
	first := NewOrderId()
	second := NewOrderId()

	assert.NotEqual(t, first, second)
	assert.Regexp(t, orderIdPattern, first)
	assert.Regexp(t, orderIdPattern, second)
}

func TestCreateOrderSuccess(t *testing.T) {
	var received models.GatewayOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "test-id", r.Header.Get("x-client-id"))
		require.Equal(t, "test-secret", r.Header.Get("x-client-secret"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		writeJSON(w, http.StatusOK, models.GatewayOrder{
			OrderId:          received.OrderId,
			OrderAmount:      received.OrderAmount,
			OrderCurrency:    received.OrderCurrency,
			OrderStatus:      models.OrderStatusActive,
			PaymentSessionId: "session_abc123",
		})
	}))
	defer server.Close()

	client := NewCashfreeClient(server.URL, "test-id", "test-secret", "http://localhost/payment-status", "")
	order, err := client.CreateOrder(context.Background(), "", testCustomer())

	require.NoError(t, err)
	assert.Regexp(t, orderIdPattern, order.OrderId)
	assert.Equal(t, "session_abc123", order.PaymentSessionId)
	assert.Equal(t, float64(250), received.OrderAmount)
	assert.Equal(t, "INR", received.OrderCurrency)
	// the return URL must carry the order id back to verification
	assert.Equal(t, "http://localhost/payment-status?order_id="+order.OrderId, received.OrderMeta.ReturnUrl)
}

func TestCreateOrderKeepsClientOrderId(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.GatewayOrderRequest
		json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusOK, models.GatewayOrder{
			OrderId:          req.OrderId,
			OrderStatus:      models.OrderStatusActive,
			PaymentSessionId: "session_xyz",
		})
	}))
	defer server.Close()

	client := NewCashfreeClient(server.URL, "id", "secret", "http://localhost/payment-status", "")
	order, err := client.CreateOrder(context.Background(), "TRF-preassigned", testCustomer())

	require.NoError(t, err)
	assert.Equal(t, "TRF-preassigned", order.OrderId)
}

func TestCreateOrderMissingSessionId(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"order_id":     "TRF-x",
			"order_status": models.OrderStatusActive,
		})
	}))
	defer server.Close()

	client := NewCashfreeClient(server.URL, "id", "secret", "http://localhost/payment-status", "")
	_, err := client.CreateOrder(context.Background(), "", testCustomer())

	require.Error(t, err)
	assert.EqualError(t, err, util.ERR_INVALID_PAYMENT_SESSION)
}

func TestCreateOrderRejectsForeignSessionPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"order_id":           "TRF-x",
			"order_status":       models.OrderStatusActive,
			"payment_session_id": "token_notasession",
		})
	}))
	defer server.Close()

	client := NewCashfreeClient(server.URL, "id", "secret", "http://localhost/payment-status", "")
	_, err := client.CreateOrder(context.Background(), "", testCustomer())

	assert.EqualError(t, err, util.ERR_INVALID_PAYMENT_SESSION)
}

func TestCreateOrderPropagatesGatewayStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication failed"})
	}))
	defer server.Close()

	client := NewCashfreeClient(server.URL, "bad-id", "bad-secret", "http://localhost/payment-status", "")
	_, err := client.CreateOrder(context.Background(), "", testCustomer())

	require.Error(t, err)
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusUnauthorized, gwErr.StatusCode)
	assert.Equal(t, "authentication failed", gwErr.Message)
}

func TestGetOrderPaid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/orders/TRF-done", r.URL.Path)
		writeJSON(w, http.StatusOK, models.GatewayOrder{
			OrderId:     "TRF-done",
			OrderStatus: models.OrderStatusPaid,
		})
	}))
	defer server.Close()

	client := NewCashfreeClient(server.URL, "id", "secret", "http://localhost/payment-status", "")
	order, err := client.GetOrder(context.Background(), "TRF-done")

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, order.OrderStatus)
}

func TestGetOrderNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "order not found"})
	}))
	defer server.Close()

	client := NewCashfreeClient(server.URL, "id", "secret", "http://localhost/payment-status", "")
	_, err := client.GetOrder(context.Background(), "TRF-missing")

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusNotFound, gwErr.StatusCode)
}
