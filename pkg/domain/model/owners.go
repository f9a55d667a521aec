package model

// OwnerSet is the authorization boundary of one request: the ordered set of
// account logins (the principal's own login plus their organizations) the
// principal may read or deploy from. Order is insertion order, which makes
// downstream merges deterministic.
type OwnerSet struct {
	logins []string
	index  map[string]struct{}
}

func NewOwnerSet(logins ...string) *OwnerSet {
	x := &OwnerSet{
		index: make(map[string]struct{}, len(logins)),
	}
	for _, login := range logins {
		x.Add(login)
	}
	return x
}

func (x *OwnerSet) Add(login string) {
	if login == "" {
		return
	}
	if _, ok := x.index[login]; ok {
		return
	}
	x.index[login] = struct{}{}
	x.logins = append(x.logins, login)
}

func (x *OwnerSet) Contains(login string) bool {
	_, ok := x.index[login]
	return ok
}

// Logins returns the logins in insertion order. The returned slice must not
// be mutated by callers.
func (x *OwnerSet) Logins() []string {
	return x.logins
}

func (x *OwnerSet) Len() int {
	return len(x.logins)
}
