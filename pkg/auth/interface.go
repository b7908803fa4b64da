package auth

//go:generate mockgen -destination=mocks/mock_token_manager.go -package=mocks opportunity-team/pkg/auth TokenManager

// TokenManager issues and checks the bearer tokens accepted by the API.
// The auth middleware depends on this rather than on JWTManager.
type TokenManager interface {
	// GenerateToken signs a token carrying the user's id.
	GenerateToken(userID string) (string, error)
	// ValidateToken returns the claims of a well-signed, unexpired token.
	ValidateToken(tokenString string) (*Claims, error)
}

var _ TokenManager = (*JWTManager)(nil)
