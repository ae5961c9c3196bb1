package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the upload form to be served from any origin.
func CORS() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type")
		ctx.Header("Access-Control-Expose-Headers",
			"Content-Disposition, X-Skipped-Files, X-Original-Bytes, X-Processed-Bytes, X-Output-Width, X-Output-Height")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
