package controllers

import (
	"net/http"

	"PGRegistry/services"
	"PGRegistry/util"

	"github.com/gin-gonic/gin"
)

func Reference(router *gin.Engine) {
	reference := router.Group("/reference")
	{
		reference.GET("/states", ListStates)
		reference.GET("/districts/:state", ListDistricts)
		reference.GET("/policeStations/:state/:district", ListPoliceStations)
	}
}

func ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, util.SuccessResponse(services.ListStates(c)))
}

func ListDistricts(c *gin.Context) {
	state := c.Param("state")
	c.JSON(http.StatusOK, util.SuccessResponse(services.ListDistricts(c, state)))
}

func ListPoliceStations(c *gin.Context) {
	state := c.Param("state")
	district := c.Param("district")
	c.JSON(http.StatusOK, util.SuccessResponse(services.ListPoliceStations(c, state, district)))
}
