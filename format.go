package vecn

import (
	"fmt"
	"io"
	"strings"
)

const (
	openParen  = "("
	closeParen = ")"
	separator  = "; "
)

// String renders v as "(e0; e1; ...; eN-1)" with each element in its %v
// form. A vector of dimension zero renders as "()".
func (v Vector[T, A]) String() string {
	var sb strings.Builder
	_, _ = v.render(&sb, "%v")
	return sb.String()
}

// Format implements fmt.Formatter. The verb, flags, width and precision
// apply to each element, so "%.2f" renders (1.00; 2.50). %s renders like %v.
func (v Vector[T, A]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		verb = 'v'
	}
	_, _ = v.render(f, fmt.FormatString(f, verb))
}

// WriteTo writes the String form of v to w. The first error returned by w is
// returned unchanged along with the number of bytes written before it.
func (v Vector[T, A]) WriteTo(w io.Writer) (int64, error) {
	return v.render(w, "%v")
}

func (v Vector[T, A]) render(w io.Writer, elemFormat string) (int64, error) {
	var written int64

	emit := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}

	if err := emit(openParen); err != nil {
		return written, err
	}
	for i := 0; i < len(v.elems); i++ {
		if i > 0 {
			if err := emit(separator); err != nil {
				return written, err
			}
		}
		if err := emit(elemFormat, v.elems[i]); err != nil {
			return written, err
		}
	}
	if err := emit(closeParen); err != nil {
		return written, err
	}
	return written, nil
}
