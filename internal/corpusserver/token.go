package corpusserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// getBearerToken extracts the token from an "Authorization: Bearer <jwt>"
// header, the same parsing tunaq's server/token.go does for its own
// Bearer-format check.
func getBearerToken(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		return "", fmt.Errorf("no authorization header present")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "bearer") {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	return strings.TrimSpace(parts[1]), nil
}

// generateToken mints a short-lived JWT for the single "operator"
// subject, signed with the server's secret. There is no per-user table
// here (unlike tunaq's server/dao/Users): the corpus browser has exactly
// one credential, so the signing key is just the configured secret
// rather than secret+password-hash+logout-time as tunaq's
// generateJWTForUser composes it.
func generateToken(secret []byte, ttl time.Duration) (string, error) {
	claims := &jwt.MapClaims{
		"iss": "rabench-corpusd",
		"sub": "operator",
		"exp": time.Now().Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(secret)
}

// validateToken checks a bearer token against secret, matching the
// signing method and issuer tunaq's validateAndLookupJWTUser checks.
func validateToken(tok string, secret []byte) error {
	_, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer("rabench-corpusd"), jwt.WithLeeway(time.Minute))
	return err
}
