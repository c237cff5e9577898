package models

// NavigationState carries transient per-navigation flags. It lives in memory
// only and is consumed at most once by the route guard.
type NavigationState struct {
	AllowUnauthenticatedAccess bool `json:"allow_unauthenticated_access"`
}
