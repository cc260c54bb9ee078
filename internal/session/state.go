package session

// Kind discriminates the session states. A session is always exactly
// one of anonymous, pending-signup, or authenticated.
type Kind string

const (
	KindAnonymous     Kind = "anonymous"
	KindPendingSignup Kind = "pending_signup"
	KindAuthenticated Kind = "authenticated"
)

type State struct {
	Kind Kind `json:"kind"`

	// Set when Kind == KindPendingSignup.
	PendingPhone string `json:"pending_phone,omitempty"`

	// Set when Kind == KindAuthenticated.
	UserID      uint   `json:"user_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func Anonymous() State {
	return State{Kind: KindAnonymous}
}

func PendingSignup(phoneNumber string) State {
	return State{Kind: KindPendingSignup, PendingPhone: phoneNumber}
}

func Authenticated(userID uint, phoneNumber string) State {
	return State{Kind: KindAuthenticated, UserID: userID, PhoneNumber: phoneNumber}
}
