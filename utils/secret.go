package utils

import "os"

// JWTSecret returns the token signing secret shared by the auth
// controllers and the JWT middleware.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}
