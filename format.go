package veclist

import (
	"fmt"
	"strings"
)

// String renders the values in logical order as "* -> a -> b -> *",
// independent of where the nodes sit in the arena.
func (l *List[T]) String() string {
	var sb strings.Builder
	l.render(&sb, false)
	return sb.String()
}

// Format implements fmt.Formatter.
//
//	%v, %s   * -> a -> b -> *
//	%+v      * -> [0]a -> [3]b -> *   (with handles)
//	%#v      veclist.List{"a", "b"}
func (l *List[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		var sb strings.Builder
		sb.WriteString("veclist.List{")
		i := 0
		for v := range l.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%#v", v)
			i++
		}
		sb.WriteByte('}')
		_, _ = f.Write([]byte(sb.String()))
	case verb == 'v' && f.Flag('+'):
		var sb strings.Builder
		l.render(&sb, true)
		_, _ = f.Write([]byte(sb.String()))
	case verb == 'v' || verb == 's':
		_, _ = f.Write([]byte(l.String()))
	default:
		fmt.Fprintf(f, "%%!%c(veclist.List=%s)", verb, l.String())
	}
}

func (l *List[T]) render(sb *strings.Builder, handles bool) {
	sb.WriteString("* -> ")
	for h, v := range l.Entries() {
		if handles {
			fmt.Fprintf(sb, "[%d]", h)
		}
		fmt.Fprintf(sb, "%v", v)
		sb.WriteString(" -> ")
	}
	sb.WriteByte('*')
}
