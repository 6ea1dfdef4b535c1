package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Token computes the x-hub-signature-256 value GitHub would send for body:
// "sha256=" followed by the lowercase hex HMAC-SHA256 of body keyed by secret.
func Token(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether presented matches the token computed for body.
// body must be the exact bytes received on the wire; verifying a re-encoded
// body would reject valid signatures. An empty presented token never matches.
func Verify(body []byte, presented, secret string) bool {
	if presented == "" {
		return false
	}
	return presented == Token(secret, body)
}
