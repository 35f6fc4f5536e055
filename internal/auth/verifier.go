// Package auth verifies bearer tokens from the storefront. Identity itself
// lives with the authentication provider; this package only answers "which
// user does this token belong to".
package auth

import (
	"context"
	"fmt"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// TokenVerifier resolves an ID token to the user it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (userID string, err error)
}

type firebaseVerifier struct {
	client *firebaseauth.Client
}

func NewFirebaseVerifier(client *firebaseauth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("verify id token: %w", err)
	}
	return token.UID, nil
}
