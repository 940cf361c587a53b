package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"PGRegistry/config"
	"PGRegistry/logger"
	"PGRegistry/models"
	"PGRegistry/util"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	orderIdPrefix        = "TRF-"
	sessionIdPrefix      = "session_"
	cashfreeAPIVersion   = "2023-08-01"
	gatewayClientTimeout = 30 * time.Second
)

// GatewayError carries the payment gateway's reported status code and
// message so handlers can pass them through.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error (%d): %s", e.StatusCode, e.Message)
}

// CashfreeClient talks to the Cashfree PG REST API.
type CashfreeClient struct {
	http      *resty.Client
	returnUrl string
	notifyUrl string
}

var (
	gatewayOnce sync.Once
	gateway     *CashfreeClient
)

/*
Gateway returns the process-wide gateway client, built exactly once
from configuration unless a client was already installed. The once
guard replaces checking for an ambient global to decide whether the
integration is initialized.
*/
func Gateway() *CashfreeClient {
	gatewayOnce.Do(func() {
		if gateway != nil {
			return
		}
		cfg := config.Cfg
		gateway = NewCashfreeClient(cfg.CashfreeBaseUrl, cfg.CashfreeClientId, cfg.CashfreeClientSecret, cfg.PaymentReturnUrl, cfg.PaymentNotifyUrl)
	})
	return gateway
}

func NewCashfreeClient(baseURL, clientId, clientSecret, returnUrl, notifyUrl string) *CashfreeClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(gatewayClientTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("x-api-version", cashfreeAPIVersion).
		SetHeader("x-client-id", clientId).
		SetHeader("x-client-secret", clientSecret)

	return &CashfreeClient{
		http:      client,
		returnUrl: returnUrl,
		notifyUrl: notifyUrl,
	}
}

// NewOrderId generates a fresh client-side order id. Two submissions
// always produce distinct orders; order creation is not idempotent.
func NewOrderId() string {
	return orderIdPrefix + uuid.NewString()
}

type gatewayErrorBody struct {
	Message string `json:"message"`
}

/*
CreateOrder registers a fixed-fee order with the gateway and returns
its payload. An empty orderId is replaced with a generated one. The
returned payment session id must carry the session prefix, else the
order is rejected before any checkout can start.
*/
func (c *CashfreeClient) CreateOrder(ctx context.Context, orderId string, customer models.CustomerDetails) (*models.GatewayOrder, error) {
	if orderId == "" {
		orderId = NewOrderId()
	}

	request := models.GatewayOrderRequest{
		OrderId:         orderId,
		OrderAmount:     util.RegistrationFeeINR,
		OrderCurrency:   "INR",
		CustomerDetails: customer,
		OrderMeta: models.OrderMeta{
			ReturnUrl: c.returnUrl + "?order_id=" + orderId,
			NotifyUrl: c.notifyUrl,
		},
	}

	var order models.GatewayOrder
	var gwErr gatewayErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&order).
		SetError(&gwErr).
		Post("/orders")
	if err != nil {
		logger.L().Errorw("create order call failed", "orderId", orderId, "error", err)
		return nil, &GatewayError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	if resp.IsError() {
		logger.L().Errorw("gateway rejected create order", "orderId", orderId, "status", resp.StatusCode(), "message", gwErr.Message)
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: gwErr.Message}
	}
	if !strings.HasPrefix(order.PaymentSessionId, sessionIdPrefix) {
		logger.L().Errorw("gateway returned malformed session id", "orderId", orderId)
		return nil, errors.New(util.ERR_INVALID_PAYMENT_SESSION)
	}

	logger.L().Infow("order created", "orderId", order.OrderId, "status", order.OrderStatus)
	return &order, nil
}

// GetOrder reads the order's current status from the gateway.
func (c *CashfreeClient) GetOrder(ctx context.Context, orderId string) (*models.GatewayOrder, error) {
	var order models.GatewayOrder
	var gwErr gatewayErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&order).
		SetError(&gwErr).
		Get("/orders/" + orderId)
	if err != nil {
		logger.L().Errorw("get order call failed", "orderId", orderId, "error", err)
		return nil, &GatewayError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	if resp.IsError() {
		logger.L().Errorw("gateway rejected get order", "orderId", orderId, "status", resp.StatusCode(), "message", gwErr.Message)
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Message: gwErr.Message}
	}
	return &order, nil
}
