package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "identity", IdentityCtxKey.String())
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: "u-1", Email: "a@x.io"}
	ctx := WithIdentity(context.Background(), want)

	got, ok := GetIdentityFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	got, ok := GetIdentityFromContext(context.Background())

	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "u-1")

	_, ok := GetIdentityFromContext(ctx)

	assert.False(t, ok)
}

func TestGetIdentityFromContext_EmptyIdentity(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Identity{Email: "a@x.io"})

	_, ok := GetIdentityFromContext(ctx)

	assert.False(t, ok)
}

func TestGetIdentityFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.Identity{UserID: "u-1"})

	_, ok := GetIdentityFromContext(ctx)

	assert.False(t, ok)
}

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")

	assert.Equal(t, "trace-1", GetTraceIDFromContext(ctx))
	assert.Empty(t, GetTraceIDFromContext(context.Background()))
}
