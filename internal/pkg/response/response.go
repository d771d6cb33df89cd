package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Keys used inside the "error" object. Route misses keep the lower-case
// spelling clients already depend on.
const (
	KeyNotFound      = "Not Found"
	KeyRouteNotFound = "Not found"
	KeyMessage       = "message"
)

const routeNotFoundMessage = "The requested URL was not found on the server."

// Error writes {"error": {key: message}}.
func Error(c *gin.Context, statusCode int, key string, message string) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			key: message,
		},
	})
}

// ErrorMessage writes {"error": {"message": message}}.
func ErrorMessage(c *gin.Context, statusCode int, message string) {
	Error(c, statusCode, KeyMessage, message)
}

// NotFound writes {"error": {"Not Found": message}} with the given status.
// Search misses answer 200 with this body, every other miss answers 404.
func NotFound(c *gin.Context, statusCode int, message string) {
	Error(c, statusCode, KeyNotFound, message)
}

// RouteNotFound is the body for requests that match no route.
func RouteNotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, KeyRouteNotFound, routeNotFoundMessage)
}

// Response writes {"response": {"success": message}}, used by create and update.
func Response(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"response": gin.H{
			"success": message,
		},
	})
}

// Success writes {"success": {"message": message}}, used by delete.
func Success(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": gin.H{
			"message": message,
		},
	})
}
