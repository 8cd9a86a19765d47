package model

// Profile is the part of a user the checkout pre-fills shipping details from.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Session struct {
	Authenticated bool     `json:"isAuthenticated"`
	User          *Profile `json:"user"`
}

func AnonymousSession() Session {
	return Session{}
}

func (s Session) IsAuthenticated() bool {
	return s.Authenticated && s.User != nil
}
