package model

// TokenManager issues and verifies session access tokens.
// Tokens are minted by the login flow; this service mostly verifies them.
type TokenManager interface {
	GenerateAccessToken(userID UserID) (string, error)
	ParseAccessToken(token string) (UserID, error)
}
