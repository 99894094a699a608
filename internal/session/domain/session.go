package domain

// State is the resolution state of the current user.
//
// Unknown means identity resolution itself failed (network, server
// error), as opposed to a clean "not logged in". Both gate checkout
// the same way, but the distinction is kept so callers can decide to
// retry resolution.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

type User struct {
	Username string
	Email    string
	Role     string
}

type Session struct {
	State State
	User  User
}

func Anonymous() Session {
	return Session{State: StateAnonymous}
}

func Unknown() Session {
	return Session{State: StateUnknown}
}

func Authenticated(u User) Session {
	return Session{State: StateAuthenticated, User: u}
}

func (s Session) LoggedIn() bool {
	return s.State == StateAuthenticated
}
