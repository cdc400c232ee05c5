package response

import (
	"encoding/json"
	"net/http"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Response is the envelope every business outcome is rendered with.
// Business failures (bad token, weak password) are not transport
// failures, they go out as HTTP 200 with status "error".
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func RenderOK(rw http.ResponseWriter, msg string) {
	Render(rw, Response{Status: StatusOK, Message: msg}, http.StatusOK)
}

func RenderBusinessError(rw http.ResponseWriter, msg string) {
	Render(rw, Response{Status: StatusError, Message: msg}, http.StatusOK)
}

func RenderInvalidRequest(rw http.ResponseWriter) {
	Render(rw, Response{Status: StatusError, Message: "invalid request data"}, http.StatusBadRequest)
}

func RenderInternalError(rw http.ResponseWriter) {
	Render(rw, Response{Status: StatusError, Message: "internal error"}, http.StatusInternalServerError)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
