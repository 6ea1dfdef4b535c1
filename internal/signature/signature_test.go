package signature

import (
	"strings"
	"testing"
)

func TestToken_knownValue(t *testing.T) {
	// HMAC-SHA256("", "") from RFC test tooling
	got := Token("", nil)
	want := "sha256=b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad"
	if got != want {
		t.Errorf("Token = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Token("k", []byte("b")), "sha256=") {
		t.Error("missing sha256= prefix")
	}
}

func TestVerify_roundTrip(t *testing.T) {
	bodies := []string{"", "{}", `{"action":"completed"}`, "héllo é \U0001F680"}
	secrets := []string{"s", "another secret", "日本語"}
	for _, b := range bodies {
		for _, k := range secrets {
			tok := Token(k, []byte(b))
			if !Verify([]byte(b), tok, k) {
				t.Errorf("Verify(%q, token, %q) = false", b, k)
			}
		}
	}
}

func TestVerify_mutations(t *testing.T) {
	body := []byte(`{"action":"completed"}`)
	secret := "hook-secret"
	tok := Token(secret, body)

	mutated := append([]byte(nil), body...)
	mutated[0] ^= 0x01
	if Verify(mutated, tok, secret) {
		t.Error("mutated body verified")
	}
	if Verify(body, tok, "hook-secreu") {
		t.Error("wrong secret verified")
	}
	if Verify(body, "sha256="+strings.Repeat("0", 64), secret) {
		t.Error("bogus token verified")
	}
	if Verify(body, strings.TrimPrefix(tok, "sha256="), secret) {
		t.Error("token without prefix verified")
	}
}

func TestVerify_absentToken(t *testing.T) {
	if Verify([]byte("body"), "", "secret") {
		t.Error("empty token verified")
	}
	if Verify(nil, "", "") {
		t.Error("empty everything verified")
	}
}
