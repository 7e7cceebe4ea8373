package models

// Token is a minted bearer token together with the claims it carries.
type Token struct {
	// Claims are the claims serialised into the token, including the
	// authoritative issued-at and expiry instants.
	Claims Claims `json:"-"`

	// SignedString is the compact header.payload.signature form sent to
	// clients.
	SignedString string `json:"-"`
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
