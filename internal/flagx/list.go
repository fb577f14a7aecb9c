package flagx

import "strings"

// StringList is a flag.Value collecting every occurrence of a repeatable
// string flag, in command-line order:
//
//	fs.Var(&refs, "starred", "starred card id (repeatable)")
type StringList []string

func (l *StringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *StringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
