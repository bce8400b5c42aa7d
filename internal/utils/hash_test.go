package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("payload"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString("payload", "key"))
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("data", "key"), HashString("data", "key"))
}

func TestHashString_DifferentKeys(t *testing.T) {
	assert.NotEqual(t, HashString("data", "key1"), HashString("data", "key2"))
}

func TestVerifyHashString(t *testing.T) {
	sig := HashString("state-nonce", "key")

	tests := []struct {
		name      string
		data      string
		signature string
		key       string
		want      bool
	}{
		{name: "valid", data: "state-nonce", signature: sig, key: "key", want: true},
		{name: "tampered data", data: "state-nonce2", signature: sig, key: "key"},
		{name: "wrong key", data: "state-nonce", signature: sig, key: "other"},
		{name: "not hex", data: "state-nonce", signature: "zz", key: "key"},
		{name: "empty signature", data: "state-nonce", signature: "", key: "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyHashString(tt.data, tt.signature, tt.key))
		})
	}
}
