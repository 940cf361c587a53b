package controllers

import (
	"errors"
	"net/http"

	"PGRegistry/services"
	"PGRegistry/util"

	"github.com/gin-gonic/gin"
)

func Owner(router *gin.Engine) {
	owner := router.Group("/owner")
	{
		owner.GET("/fetch/:mobileNo", FetchOwnerByMobile)
	}
}

/*
FetchOwnerByMobile looks up a PG owner by 10-digit mobile number.
A miss is a normal outcome (data null) so the client clears the PG
selection rather than showing an error.
*/
func FetchOwnerByMobile(c *gin.Context) {
	mobileNo := c.Param("mobileNo")
	if !isValidMobileNo(mobileNo) {
		c.JSON(http.StatusBadRequest, util.FailedResponse(errors.New(util.ERR_INVALID_MOBILE_NO)))
		return
	}
	owner := services.FetchOwnerByMobile(c, mobileNo)
	if owner == nil {
		c.JSON(http.StatusOK, util.SuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(owner))
}

func isValidMobileNo(mobileNo string) bool {
	if len(mobileNo) != 10 {
		return false
	}
	for _, r := range mobileNo {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
