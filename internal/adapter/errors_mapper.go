package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// oauthErrorBody is the error payload of an OAuth 2.0 token endpoint
// (RFC 6749, section 5.2).
type oauthErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

// mapStatus converts a non-2xx provider reply into one of the package
// sentinels. Any 5xx becomes ErrBadGateway.
func mapStatus(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := describeBody(body)
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d: %s", ErrBadGateway, status, detail)
	default:
		return fmt.Errorf("unexpected provider status %d: %s", status, detail)
	}
}

// describeBody prefers the OAuth error code and description over the raw
// body, which may be an HTML error page.
func describeBody(body []byte) string {
	var oauthErr oauthErrorBody
	if err := json.Unmarshal(body, &oauthErr); err == nil && oauthErr.Error != "" {
		if oauthErr.ErrorDescription == "" {
			return oauthErr.Error
		}
		return oauthErr.Error + ": " + oauthErr.ErrorDescription
	}

	raw := strings.TrimSpace(string(body))
	if len(raw) > maxErrorBodyLength {
		raw = raw[:maxErrorBodyLength] + "..."
	}
	return raw
}

const maxErrorBodyLength = 256
