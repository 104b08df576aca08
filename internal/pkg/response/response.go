// Package response renders the API's uniform JSON envelope. Every
// endpoint replies with {"success": true, "data": ...} or
// {"success": false, "error": {...}} so clients branch on one flag.
package response

import "github.com/gin-gonic/gin"

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool     `json:"success"`
	Error   apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success wraps data in the envelope and writes it with statusCode.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successEnvelope{Success: true, Data: data})
}

// Error writes a failure envelope carrying a machine-readable code and a
// human-readable message.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, errorEnvelope{Success: false, Error: apiError{Code: code, Message: message}})
}

// ErrorWithDetails is Error with a per-field breakdown attached. Used
// for validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, errorEnvelope{Success: false, Error: apiError{Code: code, Message: message, Details: details}})
}
