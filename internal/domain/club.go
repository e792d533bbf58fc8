package domain

// Sender is the club contact that signs a registration document.
type Sender struct {
	GivenName    string
	SurName      string
	Address      string
	PostalCode   uint32
	Town         string
	PrivatePhone string
	PublicPhone  string
	Fax          string
	Mobile       string
	Mail         string
}

// Club is the sending club: identification plus the sender contact and
// the association hierarchy it reports under. Pure data; rendering
// lives in the dm4 package.
type Club struct {
	Name   string
	Number uint64
	Sender Sender
	County string
	Region string
	State  string
	Group  string
	Nation string
}
