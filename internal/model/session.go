package model

// Session carries the identity the backend client acts as.
// It is built once at startup and handed to whatever constructs a fetcher;
// nothing reads it from package state.
type Session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

// Authorized reports whether the session holds any credential at all.
func (s Session) Authorized() bool {
	return s.AccessToken != "" || s.RefreshToken != ""
}
