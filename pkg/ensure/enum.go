package ensure

import "strings"

// Enum is a closed, ordered set of named constants. Members carry a name and
// an ordinal; values resolve to members either by identity or by
// case-insensitive name lookup.
type Enum struct {
	name    string
	members []*Member
}

// Member is a single enum constant. Members are compared by pointer identity,
// so each constant exists exactly once per enum.
type Member struct {
	enum    *Enum
	name    string
	ordinal int
}

// NewEnum creates an enum with the given type name and member names. Ordinals
// follow declaration order starting at zero. At least one member is required.
func NewEnum(name string, memberNames ...string) *Enum {
	if name == "" {
		panic("ensure: enum name must not be empty")
	}
	if len(memberNames) == 0 {
		panic("ensure: enum " + name + " must declare at least one member")
	}

	e := &Enum{name: name, members: make([]*Member, 0, len(memberNames))}
	for i, n := range memberNames {
		e.members = append(e.members, &Member{enum: e, name: n, ordinal: i})
	}
	return e
}

// Name returns the enum's type name.
func (e *Enum) Name() string { return e.name }

// Members returns the constants in ordinal order. The returned slice is
// shared; callers must not modify it.
func (e *Enum) Members() []*Member { return e.members }

// ValueOf resolves a member by case-insensitive name.
func (e *Enum) ValueOf(name string) (*Member, bool) {
	for _, m := range e.members {
		if strings.EqualFold(m.name, name) {
			return m, true
		}
	}
	return nil, false
}

// MustValueOf resolves a member by name and panics when it does not exist.
// Intended for package-level constant lookups where the name is a literal.
func (e *Enum) MustValueOf(name string) *Member {
	m, ok := e.ValueOf(name)
	if !ok {
		panic("ensure: enum " + e.name + " has no member named " + name)
	}
	return m
}

// Name returns the member's declared name.
func (m *Member) Name() string { return m.name }

// Ordinal returns the member's position within its enum.
func (m *Member) Ordinal() int { return m.ordinal }

// Enum returns the enum the member belongs to.
func (m *Member) Enum() *Enum { return m.enum }

func (m *Member) String() string { return m.name }
