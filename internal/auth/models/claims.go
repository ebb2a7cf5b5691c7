package models

import "github.com/golang-jwt/jwt/v5"

// ClaimsFromToken decodes the claim set of a raw JWT without verifying its
// signature. The provider already validated the token; this only recovers the
// claim map for projection. Returns an empty map for absent or unparseable
// tokens.
func ClaimsFromToken(raw string) map[string]any {
	claims := jwt.MapClaims{}
	if raw == "" {
		return map[string]any{}
	}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return map[string]any{}
	}
	return map[string]any(claims)
}
