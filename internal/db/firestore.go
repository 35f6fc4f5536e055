package db

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// ConnectFirestore opens a Firestore client for the remote cart/wishlist
// store. A credentials file is optional; without one, Application Default
// Credentials apply.
func ConnectFirestore(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("firestore: project id is empty")
	}
	opts := clientOptions(credentialsFile)
	return firestore.NewClient(ctx, projectID, opts...)
}

// ConnectFirebaseAuth builds the Firebase Auth client used to verify ID
// tokens.
func ConnectFirebaseAuth(ctx context.Context, projectID, credentialsFile string) (*firebaseauth.Client, error) {
	opts := clientOptions(credentialsFile)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}

func clientOptions(credentialsFile string) []option.ClientOption {
	if strings.TrimSpace(credentialsFile) == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(credentialsFile)}
}
