package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is how much room a node asks for along its main axis: "shrink",
// "fill", "fill-portion(n)" or "fixed(n)".
type Length string

const (
	Shrink Length = "shrink"
	Fill   Length = "fill"
)

func FillPortion(portion uint16) Length {
	return Length(fmt.Sprintf("fill-portion(%d)", portion))
}

func Fixed(units uint16) Length {
	return Length(fmt.Sprintf("fixed(%d)", units))
}

// Portion returns the fill portion of the length. Fill counts as one portion,
// everything else as none.
func (l Length) Portion() uint16 {
	if l == Fill {
		return 1
	}

	if v, ok := l.argument("fill-portion"); ok {
		return v
	}

	return 0
}

func (l Length) Units() (uint16, bool) {
	return l.argument("fixed")
}

func (l Length) argument(name string) (uint16, bool) {
	s := string(l)
	if !strings.HasPrefix(s, name+"(") || !strings.HasSuffix(s, ")") {
		return 0, false
	}

	v, err := strconv.ParseUint(s[len(name)+1:len(s)-1], 10, 16)
	if err != nil {
		return 0, false
	}

	return uint16(v), true
}
