package mailer

import "context"

// Sender dispatches one-time passcodes to the admin mailbox. It is an
// external collaborator: delivery can fail independently of the auth flow,
// and failures carry enough categorization for the operator to act on
// (see the sentinel errors in this package).
type Sender interface {
	// SendOTPEmail delivers the code to the given address.
	SendOTPEmail(ctx context.Context, email, code string) error
}
