package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: a status field plus either a
// data payload, a human-readable message, or an error detail.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   data,
	})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
	})
}

func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status": "error",
		"detail": detail,
	})
}

func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, gin.H{
		"status": "error",
		"detail": detail,
	})
}

func Conflict(c *gin.Context, detail string) {
	c.JSON(http.StatusConflict, gin.H{
		"status": "error",
		"detail": detail,
	})
}

func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status": "error",
		"detail": "internal server error",
	})
}
