// kind.go - kind registration and instance construction.
//
// A Kind is produced once per Spec by Define. Define parses the template,
// checks it against the declared fields, and freezes the result. After that
// a Kind is read-only and safe for concurrent use.
//
// Construction semantics:
//   - Supplied values replace their `$name` placeholders.
//   - Declared names that are not supplied leave `$name` in the message.
//     Construction never fails for an omitted value.
//   - Only declared names are stored as fields.
//   - Every instance captures a stack at construction.
package xgxkind

import (
	"strconv"
)

// Spec describes an error kind.
type Spec struct {
	// Tag is the permanent kind name carried by every instance.
	Tag string

	// Template is the message template, e.g. "user $id not found".
	Template string

	// Fields lists the field names explicitly. Every template placeholder must
	// be declared here. A nil Fields derives the list from Template.
	Fields []string

	// Base optionally attaches extra behavior to every instance.
	Base Base
}

// Args carries field values at construction. Values are expected to be
// strings or numbers.
type Args map[string]any

// Kind is a registered error kind. The zero value is not usable; obtain
// kinds from Define, MustDefine or (*Kind).Extend.
type Kind struct {
	tag    string
	tmpl   template
	fields []string
	base   Base
	parent *Kind
}

// Define validates spec and returns the kind it describes. Failures are
// InvalidSpec or UndeclaredField errors.
func Define(spec Spec) (*Kind, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	return newKind(spec, nil), nil
}

// MustDefine is like Define but panics on an invalid spec. Intended for
// package-level kind declarations.
func MustDefine(spec Spec) *Kind {
	k, err := Define(spec)
	if err != nil {
		panic(err)
	}
	return k
}

// Extend defines a child kind. The child has its own tag, template and fields;
// it inherits k's Base when spec.Base is nil. Instances of the child satisfy
// IsA(err, k) but not k.Is(err).
func (k *Kind) Extend(spec Spec) (*Kind, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	if spec.Base == nil {
		spec.Base = k.base
	}
	return newKind(spec, k), nil
}

// newKind builds a kind without validation. Builtin kinds are declared with it
// directly, which keeps Define's error kinds free of an initialization cycle.
func newKind(spec Spec, parent *Kind) *Kind {
	t := parseTemplate(spec.Template)
	declared := spec.Fields
	if declared == nil {
		declared = t.names
	}
	fs := make([]string, len(declared))
	copy(fs, declared)
	return &Kind{
		tag:    spec.Tag,
		tmpl:   t,
		fields: fs,
		base:   spec.Base,
		parent: parent,
	}
}

func validateSpec(spec Spec) error {
	if !isIdent(spec.Tag) {
		return InvalidSpec.New(Args{"tag": strconv.Quote(spec.Tag), "reason": "tag must be an identifier"})
	}
	if spec.Fields == nil {
		return nil
	}
	declared := make(map[string]struct{}, len(spec.Fields))
	for _, f := range spec.Fields {
		if !isIdent(f) {
			return InvalidSpec.New(Args{"tag": spec.Tag, "reason": "field " + strconv.Quote(f) + " is not an identifier"})
		}
		if _, dup := declared[f]; dup {
			return InvalidSpec.New(Args{"tag": spec.Tag, "reason": "field " + f + " declared twice"})
		}
		declared[f] = struct{}{}
	}
	for _, name := range Placeholders(spec.Template) {
		if _, ok := declared[name]; !ok {
			return UndeclaredField.New(Args{"tag": spec.Tag, "field": name})
		}
	}
	return nil
}

// Tag returns the kind's permanent tag.
func (k *Kind) Tag() string { return k.tag }

// Template returns the raw message template.
func (k *Kind) Template() string { return k.tmpl.raw }

// Fields returns a copy of the kind's field names in declared order.
func (k *Kind) Fields() []string {
	out := make([]string, len(k.fields))
	copy(out, k.fields)
	return out
}

// Parent returns the kind this one was extended from, or nil.
func (k *Kind) Parent() *Kind { return k.parent }

// String returns the tag.
func (k *Kind) String() string { return k.tag }

// New builds an instance from args. A kind with no fields accepts nil args.
func (k *Kind) New(args Args) Error {
	return k.construct(nil, args, 1)
}

// Wrap builds an instance that records cause as its provenance.
func (k *Kind) Wrap(cause error, args Args) Error {
	return k.construct(cause, args, 1)
}

func (k *Kind) construct(cause error, args Args, skip int) Error {
	e := &instance{
		kind:  k,
		msg:   k.tmpl.render(args),
		ctx:   fieldsFromArgs(k.fields, args),
		cause: cause,
		stk:   captureStackDefault(skip + 1),
	}
	e.trace = renderTrace(e)
	if k.base != nil {
		e.behavior = k.base(e)
	}
	return e
}

// Is reports whether err is an instance built by exactly this kind. It does
// not look at causes; use FindCause for that.
func (k *Kind) Is(err error) bool {
	in, ok := err.(*instance)
	return ok && k != nil && in.kind == k
}

// IsA reports whether err is an instance of k or of a kind extended from k.
func IsA(err error, k *Kind) bool {
	in, ok := err.(*instance)
	if !ok || k == nil {
		return false
	}
	for cur := in.kind; cur != nil; cur = cur.parent {
		if cur == k {
			return true
		}
	}
	return false
}
