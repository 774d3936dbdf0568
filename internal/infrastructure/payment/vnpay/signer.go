package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Signer computes and checks HMAC-SHA512 signatures with the merchant secret.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the lowercase hex HMAC-SHA512 of canonical.
func (s *Signer) Sign(canonical string) string {
	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature over pairs and compares it with the
// vnp_SecureHash pair byte for byte, in constant time. The comparison is case
// sensitive. A missing or empty hash never verifies.
func (s *Signer) Verify(pairs []Pair) bool {
	received := ""
	for _, p := range pairs {
		if p.Key == ParamSecureHash {
			received = p.Value
			break
		}
	}
	if received == "" {
		return false
	}

	expected := s.Sign(Canonicalize(pairs))
	return hmac.Equal([]byte(received), []byte(expected))
}
