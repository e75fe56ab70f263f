package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"type":"checkout.session.completed"}`)
	secret := "whsec_test"

	signature := Sign(body, secret)
	assert.True(t, VerifySignature(body, signature, secret))
}

func TestVerifySignature_Mismatch(t *testing.T) {
	body := []byte(`{"type":"checkout.session.completed"}`)

	assert.False(t, VerifySignature(body, Sign(body, "other-secret"), "whsec_test"))
	assert.False(t, VerifySignature(body, "deadbeef", "whsec_test"))
	assert.False(t, VerifySignature(body, "", "whsec_test"))

	tampered := append([]byte{}, body...)
	tampered[0] = 'X'
	assert.False(t, VerifySignature(tampered, Sign(body, "whsec_test"), "whsec_test"))
}
