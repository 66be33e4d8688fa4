package response

import (
	"encoding/json"
	"net/http"
)

// Response is the body of every write action. The page script shows Message
// in an alert and follows Redirect when set.
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    interface{} `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessRedirect(w http.ResponseWriter, message, redirect string) {
	JSON(w, http.StatusOK, Response{
		Success:  true,
		Message:  message,
		Redirect: redirect,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ErrorRedirect(w http.ResponseWriter, statusCode int, message, redirect string) {
	JSON(w, statusCode, Response{
		Success:  false,
		Message:  message,
		Redirect: redirect,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func TooManyRequests(w http.ResponseWriter) {
	Error(w, http.StatusTooManyRequests, "Too many requests, please slow down", nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

// Stale answers a superseded fragment request; the page keeps its newer content.
func Stale(w http.ResponseWriter) {
	w.Header().Set("X-Stale-Response", "true")
	w.WriteHeader(http.StatusNoContent)
}
