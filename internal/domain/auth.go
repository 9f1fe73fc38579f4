package domain

// Identity is the authenticated caller as asserted by the external identity
// provider's token.
type Identity struct {
	UserID string
	Email  string
}

// TokenVerifier verifies a bearer token and returns the caller's identity.
// Token issuance belongs to the identity provider; this API only verifies.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}
