package routes

import (
	"PGRegistry/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {
	controllers.Reference(r)
	controllers.Owner(r)
	controllers.Draft(r)
	controllers.Files(r)
	controllers.Registration(r)
	controllers.Order(r)
}
