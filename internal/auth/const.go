package auth

import "time"

type SessionKey string

var (
	SessionKeyAuthData           SessionKey = "auth_data"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
	SessionKeyOauthState         SessionKey = "oauth_state"
	SessionKeyOauthNonce         SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier  SessionKey = "oauth_code_verifier"
)

// expiryWarningWindow is how close to expiry a token can get before
// GetAuthToken starts logging about it. Nothing is refreshed automatically.
const expiryWarningWindow = 5 * time.Minute
