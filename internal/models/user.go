// Package models defines the diary data model: user records and the
// entries they own.
package models

// User is a single account record. Entries are embedded, not referenced:
// every entry is exclusively owned by exactly one user, and the whole
// record is serialized as one JSON object inside the user directory.
type User struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	FullName string  `json:"fullName"`
	Entries  []Entry `json:"entries"`
}

// DisplayName returns the name shown in the UI greeting: the full name
// when present, the username otherwise.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
