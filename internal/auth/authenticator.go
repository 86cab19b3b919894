package auth

import (
	"context"

	"github.com/mmynk/groupledger/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Services depend on it so the credential scheme can change without touching
// the group or ledger code.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}

// Actor is the signed-in identity every mutating operation runs as.
type Actor struct {
	UID         string
	Email       string
	DisplayName string
}

// Member returns the member record used when the actor joins or creates a group.
func (a Actor) Member() models.Member {
	return models.Member{UID: a.UID, Name: a.DisplayName, Email: a.Email}
}

// ActorFromUser derives the acting identity of a stored user.
func ActorFromUser(u *models.User) Actor {
	return Actor{UID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}
