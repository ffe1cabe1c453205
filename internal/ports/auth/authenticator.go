package auth

import "context"

// Authenticator habla con los endpoints de autenticación del backend.
type Authenticator interface {
	Login(ctx context.Context, in Credentials) (TokenResponse, error)
	Register(ctx context.Context, in RegisterInput) (User, error)
	// Refresh pide un token nuevo para email.
	Refresh(ctx context.Context, email string) (TokenResponse, error)
}

// ClaimsDecoder extrae claims de un token opaco.
type ClaimsDecoder interface {
	Decode(token string) (Claims, error)
}
