package utils

import (
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
)

// ErrorHandler handles global errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": c.Errors.Last().Error()})
		}
	}
}

// MaskString hides the answer while keeping its shape: every letter and digit
// becomes '*', spaces and punctuation stay as they are.
// "Hey Jude" -> "*** ****"
func MaskString(s string) string {
	masked := []rune(s)
	for i, r := range masked {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			masked[i] = '*'
		}
	}
	return string(masked)
}
