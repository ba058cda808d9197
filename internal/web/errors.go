package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hue/internal/errors"
)

// MapHueErrorToStatus maps hue error codes to HTTP status codes
func MapHueErrorToStatus(code errors.ErrorCode) int {
	switch code {
	case errors.MissingParameter:
		return http.StatusBadRequest // 400
	case errors.ConfigInvalid:
		return http.StatusBadRequest // 400
	case errors.AnimalNotFound:
		return http.StatusNotFound // 404
	case errors.RouteNotFound:
		return http.StatusNotFound // 404
	case errors.MethodNotAllowed:
		return http.StatusMethodNotAllowed // 405
	case errors.SourceUnreadable:
		return http.StatusInternalServerError // 500
	case errors.SourceInvalid:
		return http.StatusInternalServerError // 500
	case errors.InternalError:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// WriteErrorPage renders the HTML error page for err, with the status
// mapped from its error code
func WriteErrorPage(w http.ResponseWriter, err error) {
	status := MapHueErrorToStatus(errors.GetCode(err))
	title := http.StatusText(status)

	renderPage(w, status, messagePage, title, messageData{
		Heading: title,
		Message: errorText(err),
	})
}

// errorText extracts the readable message from an error, dropping the
// machine code prefix that HueError.Error() carries
func errorText(err error) string {
	if herr, ok := err.(*errors.HueError); ok {
		if cause := herr.Unwrap(); cause != nil {
			return fmt.Sprintf("%s: %v", herr.Message, cause)
		}
		return herr.Message
	}
	return err.Error()
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
