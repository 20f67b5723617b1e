package services

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// GoogleIdentity is the verified subject of a Google sign-in.
type GoogleIdentity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (GoogleIdentity, error)
}

// FirebaseVerifier checks Firebase ID tokens issued for Google sign-in.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (GoogleIdentity, error) {
	if v.client == nil {
		return GoogleIdentity{}, Business("Google sign-in is not configured")
	}
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return GoogleIdentity{}, Unauthorized("Invalid Google token")
	}
	identity := GoogleIdentity{UID: token.UID}
	identity.Email, _ = token.Claims["email"].(string)
	identity.Name, _ = token.Claims["name"].(string)
	identity.Picture, _ = token.Claims["picture"].(string)
	if identity.Email == "" {
		return GoogleIdentity{}, Unauthorized("Google account has no email")
	}
	return identity, nil
}
