package auth

// Session holds the identity of the currently signed-in user.
// A nil *Session means unauthenticated; sessions are replaced
// wholesale on login/logout, never partially mutated.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// StatusKey names a single flag inside AuthStatus
type StatusKey string

const (
	// StatusIsLoading flags an in-flight login call
	StatusIsLoading StatusKey = "isLoading"
)

// AuthStatus tracks the progress of auth-related operations
type AuthStatus struct {
	IsLoading bool `json:"isLoading"`
}
