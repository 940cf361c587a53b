package main

import (
	"testing"

	"PGRegistry/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRun_FullCoverage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	isTest = true
	defer func() { isTest = false }()

	serverStarted := false
	startServer = func(r *gin.Engine, port string) error {
		serverStarted = true
		return nil
	}

	// run main logic
	main()
	run()

	assert.NotNil(t, config.Cfg)
	assert.Equal(t, "8080", config.Cfg.Port)
	// test mode stops before the listener
	assert.False(t, serverStarted)
}
