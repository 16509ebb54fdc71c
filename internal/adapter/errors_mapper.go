package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into one of the transport sentinels.
// The status code and body are kept in the message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	var kind error
	switch status {
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		kind = ErrBadRequest
	case http.StatusNotFound:
		kind = ErrNotFound
	default:
		kind = ErrInternalServerError
	}

	return fmt.Errorf("%w: http %d: %s", kind, status, body)
}
