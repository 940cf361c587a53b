package controllers

import (
	"errors"
	"net/http"

	"PGRegistry/models"
	"PGRegistry/services"
	"PGRegistry/util"

	"github.com/gin-gonic/gin"
)

func Registration(router *gin.Engine) {
	registration := router.Group("/registration")
	{
		registration.POST("/submit", SubmitRegistration)
		registration.GET("/confirm", ConfirmRegistration)
		registration.POST("/cancel", CancelPayment)
	}
}

/*
SubmitRegistration validates the posted form, uploads any inline
documents, creates a gateway order and returns the payment session to
start checkout with. Validation failures come back before any
network call is made.
*/
func SubmitRegistration(c *gin.Context) {
	var form models.DraftForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	session, err := services.SubmitRegistration(c, &form)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(session))
}

// ConfirmRegistration verifies the order named in the return-URL
// query string and reports the single success or failure outcome.
func ConfirmRegistration(c *gin.Context) {
	orderId := c.Query("order_id")
	outcome, err := services.ConfirmRegistration(c, orderId)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(outcome))
}

type cancelRequest struct {
	OrderId string `json:"orderId"`
}

// CancelPayment records that the checkout modal was closed. The
// in-flight order is not voided with the gateway.
func CancelPayment(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.CancelPayment(c, req.OrderId); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Editing resumed"))
}

// statusForError maps gateway failures to the gateway's own status
// code and everything else to a plain bad request.
func statusForError(err error) int {
	var gwErr *services.GatewayError
	if errors.As(err, &gwErr) {
		if gwErr.StatusCode > 0 {
			return gwErr.StatusCode
		}
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
