package ledger

// Set holds ledger accounts in creation order, keyed by exact name.
type Set struct {
	accounts []Account
	names    map[string]struct{}
}

func NewSet() *Set {
	return &Set{names: make(map[string]struct{})}
}

// Add registers a unless an account with the same name exists. It reports
// whether a was added.
func (s *Set) Add(a Account) bool {
	if s.Has(a.Name) {
		return false
	}

	s.names[a.Name] = struct{}{}
	s.accounts = append(s.accounts, a)

	return true
}

func (s *Set) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

func (s *Set) Len() int {
	return len(s.accounts)
}

// Accounts returns a copy of the accounts in creation order.
func (s *Set) Accounts() []Account {
	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)

	return out
}

func (s *Set) Names() []string {
	names := make([]string, 0, len(s.accounts))
	for _, a := range s.accounts {
		names = append(names, a.Name)
	}

	return names
}
