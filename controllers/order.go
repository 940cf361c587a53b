package controllers

import (
	"errors"
	"net/http"

	"PGRegistry/models"
	"PGRegistry/services"
	"PGRegistry/util"

	"github.com/gin-gonic/gin"
)

/*
Standalone order endpoints kept wire-compatible with the SPA's
serverless functions, collapsed into one parameterized implementation.
Per the frontend contract they manage their own CORS headers on every
response path, errors included.
*/
func Order(router *gin.Engine) {
	router.POST("/create-order", CreateOrder)
	router.OPTIONS("/create-order", createOrderPreflight)
	router.GET("/verify-payment", VerifyPayment)
	router.OPTIONS("/verify-payment", verifyPaymentPreflight)

	// Anything other than the contract method answers 405.
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		router.Handle(method, "/create-order", createOrderMethodNotAllowed)
	}
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		router.Handle(method, "/verify-payment", verifyPaymentMethodNotAllowed)
	}
}

func setOrderCORS(c *gin.Context, methods string) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Allow-Methods", methods)
}

func createOrderPreflight(c *gin.Context) {
	setOrderCORS(c, "POST, OPTIONS")
	c.Status(http.StatusNoContent)
}

func verifyPaymentPreflight(c *gin.Context) {
	setOrderCORS(c, "GET, OPTIONS")
	c.Status(http.StatusNoContent)
}

func createOrderMethodNotAllowed(c *gin.Context) {
	setOrderCORS(c, "POST, OPTIONS")
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": util.ERR_METHOD_NOT_ALLOWED})
}

func verifyPaymentMethodNotAllowed(c *gin.Context) {
	setOrderCORS(c, "GET, OPTIONS")
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": util.ERR_METHOD_NOT_ALLOWED})
}

/*
CreateOrder forwards a client-generated order to the gateway and maps
payment_session_id, order_id and order_status straight through.
Gateway failures answer with the gateway's status code when it
reported one, else 500.
*/
func CreateOrder(c *gin.Context) {
	setOrderCORS(c, "POST, OPTIONS")
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": util.ERR_MISSING_REQUEST_BODY})
		return
	}
	order, err := services.Gateway().CreateOrder(c, req.OrderId, req.CustomerDetails)
	if err != nil {
		c.JSON(gatewayStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"payment_session_id": order.PaymentSessionId,
		"order_id":           order.OrderId,
		"order_status":       order.OrderStatus,
	})
}

// VerifyPayment forwards the order-status read and returns the
// gateway payload verbatim.
func VerifyPayment(c *gin.Context) {
	setOrderCORS(c, "GET, OPTIONS")
	orderId := c.Query("orderId")
	if orderId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": util.ERR_MISSING_ORDER_ID_PARAM})
		return
	}
	order, err := services.Gateway().GetOrder(c, orderId)
	if err != nil {
		c.JSON(gatewayStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func gatewayStatus(err error) int {
	var gwErr *services.GatewayError
	if errors.As(err, &gwErr) && gwErr.StatusCode > 0 {
		return gwErr.StatusCode
	}
	return http.StatusInternalServerError
}
