package entity

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// UserProfile lives at users/{userId}. The authenticated session that owns
// it comes from an external auth service.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Provider string `json:"provider"`
	PhotoURL string `json:"photoURL,omitempty"`
}
