package adapter

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{
			name:    "oauth error with description",
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid_grant","error_description":"Bad Request"}`,
			wantErr: ErrBadRequest,
			wantMsg: "invalid_grant: Bad Request",
		},
		{
			name:    "oauth error code only",
			status:  http.StatusUnauthorized,
			body:    `{"error":"invalid_client"}`,
			wantErr: ErrUnauthorized,
			wantMsg: "invalid_client",
		},
		{
			name:    "plain body",
			status:  http.StatusForbidden,
			body:    "  denied \n",
			wantErr: ErrForbidden,
			wantMsg: "denied",
		},
		{
			name:    "empty body uses status text",
			status:  http.StatusNotFound,
			wantErr: ErrNotFound,
			wantMsg: "Not Found",
		},
		{
			name:    "server error",
			status:  http.StatusServiceUnavailable,
			body:    "<html>down</html>",
			wantErr: ErrBadGateway,
			wantMsg: "status 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapStatus(tt.status, []byte(tt.body))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMapStatus_Unexpected(t *testing.T) {
	err := mapStatus(http.StatusTeapot, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "418")
}

func TestMapStatus_TruncatesLongBody(t *testing.T) {
	err := mapStatus(http.StatusBadRequest, []byte(strings.Repeat("x", 1000)))

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Less(t, len(err.Error()), 400)
}
