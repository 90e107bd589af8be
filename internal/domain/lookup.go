package domain

type lookupKind int

const (
	lookupByEmail lookupKind = iota + 1
	lookupByID
)

// UserLookup selects exactly one key for fetching a user. Construct it with
// ByEmail or ByID; the zero value is invalid and rejected by repositories.
type UserLookup struct {
	kind  lookupKind
	value string
}

// ByEmail looks a user up by their unique email address.
func ByEmail(email string) UserLookup {
	return UserLookup{kind: lookupByEmail, value: email}
}

// ByID looks a user up by their opaque id.
func ByID(id string) UserLookup {
	return UserLookup{kind: lookupByID, value: id}
}

// IsZero reports whether the lookup was constructed without a key.
func (l UserLookup) IsZero() bool {
	return l.kind == 0
}

// Key returns the column name and value the lookup resolves to.
func (l UserLookup) Key() (string, string) {
	switch l.kind {
	case lookupByEmail:
		return "email", l.value
	case lookupByID:
		return "id", l.value
	default:
		return "", ""
	}
}
