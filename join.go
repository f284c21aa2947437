// join.go - formatting-aware multi-error join.
//
// Mirrors errors.Join for Error() and Unwrap() []error, and implements
// fmt.Formatter so "%+v" renders each child verbosely. Partition callers use
// JoinErrors to report the error side as a single error value.
package xgxkind

import (
	"fmt"
	"strings"
)

// multi holds non-nil children only.
type multi struct {
	errs []error
}

// Error concatenates child Error() strings with newlines, like errors.Join.
func (m *multi) Error() string {
	var sb strings.Builder
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes the children to errors.Is/As and Walk.
func (m *multi) Unwrap() []error { return m.errs }

func (m *multi) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		formatConcise(s, m)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		formatConcise(s, m)
	}
}

// Join returns an error wrapping the given errors, ignoring nils.
//   - All nil: nil
//   - One non-nil: that error (identity preserved)
//   - Two or more: a multi-error whose %+v prints every child verbosely
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	default:
		return &multi{errs: nz}
	}
}

// JoinErrors joins instances, typically the error side of Partition.
func JoinErrors(errs []Error) error {
	generic := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			generic = append(generic, e)
		}
	}
	return Join(generic...)
}
