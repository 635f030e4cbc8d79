package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ordenespro/internal/storage"
)

// Health verifies the storage engine with a round trip on a probe key.
// Never exposes credentials or internals.
func Health(eng storage.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storageStatus := "connected"
		if err := eng.Set(ctx, "health:probe", []byte(time.Now().Format(time.RFC3339))); err != nil {
			storageStatus = "error"
		}

		status := http.StatusOK
		if storageStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": storageStatus,
		})
	}
}
