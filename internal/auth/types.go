package auth

// OIDCError carries a user-facing redirect target alongside the log message.
type OIDCError struct {
	RedirectURL string
	Message     string
}

func (e *OIDCError) Error() string {
	return e.Message
}
