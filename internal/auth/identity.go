package auth

// Identity is the minimal user record embedded in a session token and
// exposed to authenticated handlers.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credentials is a login attempt. Ephemeral: never stored, never logged
// in cleartext.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
