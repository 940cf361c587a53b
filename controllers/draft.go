package controllers

import (
	"net/http"

	"PGRegistry/models"
	"PGRegistry/services"
	"PGRegistry/util"

	"github.com/gin-gonic/gin"
)

func Draft(router *gin.Engine) {
	draft := router.Group("/draft")
	{
		draft.PUT("/:sessionId", SaveDraft)
		draft.GET("/:sessionId", LoadDraft)
		draft.DELETE("/:sessionId", ClearDraft)
	}
}

// SaveDraft autosaves the form-in-progress. Persistence errors are
// swallowed by the service, so this always reports success.
func SaveDraft(c *gin.Context) {
	sessionId := c.Param("sessionId")
	var form models.DraftForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	form.SessionId = sessionId
	services.SaveDraft(c, sessionId, form)
	c.JSON(http.StatusOK, util.SuccessResponse("Draft saved"))
}

// LoadDraft returns the saved draft, or null data when none exists.
func LoadDraft(c *gin.Context) {
	sessionId := c.Param("sessionId")
	form := services.LoadDraft(c, sessionId)
	if form == nil {
		c.JSON(http.StatusOK, util.SuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(form))
}

func ClearDraft(c *gin.Context) {
	sessionId := c.Param("sessionId")
	services.ClearDraft(c, sessionId)
	c.JSON(http.StatusOK, util.SuccessResponse("Draft cleared"))
}
