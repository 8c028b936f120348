package entity

// UserToken is the decoded identity carried by a broker bearer token. It is
// built fresh per request from a verified token and never persisted.
type UserToken struct {
	Username string
	Email    string
	Name     string
	Scope    string
	Groups   []string

	// Raw holds the full claim mapping for pass-through responses.
	Raw map[string]interface{}
}

// InGroup reports whether the token carries the given group/role name.
func (t *UserToken) InGroup(group string) bool {
	for _, g := range t.Groups {
		if g == group {
			return true
		}
	}

	return false
}
