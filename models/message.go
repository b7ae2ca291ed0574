package models

import "time"

// ContactMessage is a message submitted through the public contact form and
// reviewed later in the admin panel.
type ContactMessage struct {
	// ID is the server-assigned message identifier.
	ID string `json:"id"`

	// Name is the sender's display name, trimmed of surrounding whitespace.
	Name string `json:"name"`

	// Email is the sender's address, lowercased and trimmed.
	Email string `json:"email"`

	// Message is the message body, trimmed of surrounding whitespace.
	Message string `json:"message"`

	// Date is the moment the message was received by the server.
	Date time.Time `json:"date"`

	// Read marks whether the admin has already reviewed the message.
	Read bool `json:"read"`
}
