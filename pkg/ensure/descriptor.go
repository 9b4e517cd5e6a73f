package ensure

// Descriptor describes an expected shape for validation. The set of variants
// is closed: Kind (a primitive tag), *Enum, *Coercible, Union and *Struct.
// The interface is sealed so the checker's dispatch can stay exhaustive.
type Descriptor interface {
	descriptor()
}

func (Kind) descriptor()       {}
func (*Enum) descriptor()      {}
func (*Coercible) descriptor() {}
func (Union) descriptor()      {}
func (*Struct) descriptor()    {}

// Union is an ordered, non-empty sequence of alternative descriptors. A value
// matches if it matches any member; members are tried left to right and the
// first success wins.
type Union []Descriptor

// Field pairs a struct field name with the descriptor its value must match.
type Field struct {
	Name string
	Type Descriptor
}

// Struct describes an object shape as an ordered list of named fields. Field
// order is declaration order, which keeps error reporting deterministic: the
// first failing field short-circuits the check.
type Struct struct {
	fields []Field
}

// Shape builds a struct descriptor from the given fields.
func Shape(fields ...Field) *Struct {
	return &Struct{fields: fields}
}

// Fields returns the declared fields in order.
func (s *Struct) Fields() []Field {
	return s.fields
}
