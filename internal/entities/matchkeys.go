package entities

// MatchKeys are the derived, precomputed fields used by the scorer (C7) and
// the name index (C4/C5). Per invariant I6, MatchKeys is a pure function of
// the Entity it was built from.
type MatchKeys struct {
	ListName Source
	ListID   string

	NameASCII   string
	NameTokens  []string
	NameSoundex string

	AliasASCII   []string
	AliasTokens  [][]string
	AliasSoundex []string
}

// Key returns the (list_name, list_id) primary key, matching Entity.Key.
func (m *MatchKeys) Key() string {
	return string(m.ListName) + "\x00" + m.ListID
}
