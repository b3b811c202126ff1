package scan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Class is a set of byte values.
type Class [4]uint64

// Bytes returns the class holding every byte of s.
func Bytes(s string) Class {
	var c Class
	for i := 0; i < len(s); i++ {
		c.add(s[i])
	}
	return c
}

// Range returns the class holding bytes lo through hi inclusive.
func Range(lo, hi byte) Class {
	var c Class
	for b := int(lo); b <= int(hi); b++ {
		c.add(byte(b))
	}
	return c
}

// Any returns the class holding every byte.
func Any() Class {
	return Class{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

func (c *Class) add(b byte) {
	c[b>>6] |= 1 << (b & 63)
}

// Has reports whether b is in the class.
func (c Class) Has(b byte) bool {
	return c[b>>6]&(1<<(b&63)) != 0
}

// Not returns the complement of the class.
func (c Class) Not() Class {
	return Class{^c[0], ^c[1], ^c[2], ^c[3]}
}

// Union returns the bytes in either class.
func (c Class) Union(other Class) Class {
	return Class{c[0] | other[0], c[1] | other[1], c[2] | other[2], c[3] | other[3]}
}

// IsEmpty reports whether the class holds no bytes.
func (c Class) IsEmpty() bool {
	return c[0]|c[1]|c[2]|c[3] == 0
}

// namedClasses are the classes a class expression may refer to by name.
var namedClasses = map[string]Class{
	"any":   Any(),
	"digit": Range('0', '9'),
	"lower": Range('a', 'z'),
	"upper": Range('A', 'Z'),
	"alpha": Range('a', 'z').Union(Range('A', 'Z')),
	"word":  Range('a', 'z').Union(Range('A', 'Z')).Union(Range('0', '9')).Union(Bytes("_")),
	"space": Bytes(" \t\r\n\f\v"),
	"hex":   Range('0', '9').Union(Range('a', 'f')).Union(Range('A', 'F')),
	"ascii": Range(0, 0x7f),
}

// ParseClass parses a class expression: either a name such as "digit" or
// "space", or a bracket expression like "[a-z_]" or "[^,\n]". Inside
// brackets, \n \t \r \\ \] \- \^ and \xHH escapes are recognized.
func ParseClass(expr string) (Class, error) {
	if c, ok := namedClasses[expr]; ok {
		return c, nil
	}
	if len(expr) < 2 || expr[0] != '[' || expr[len(expr)-1] != ']' {
		return Class{}, fmt.Errorf("%w: %q", ErrUnknownClass, expr)
	}

	body := expr[1 : len(expr)-1]
	negate := strings.HasPrefix(body, "^")
	if negate {
		body = body[1:]
	}

	members, err := unescapeClass(body)
	if err != nil {
		return Class{}, fmt.Errorf("class %q: %w", expr, err)
	}

	var c Class
	for i := 0; i < len(members); i++ {
		lo := members[i]
		if i+2 < len(members) && members[i+1].isRangeDash() {
			hi := members[i+2]
			if hi.b < lo.b {
				return Class{}, fmt.Errorf("class %q: range %q-%q is reversed", expr, lo.b, hi.b)
			}
			c = c.Union(Range(lo.b, hi.b))
			i += 2
			continue
		}
		c.add(lo.b)
	}

	if negate {
		c = c.Not()
	}
	return c, nil
}

type classMember struct {
	b       byte
	escaped bool
}

func (m classMember) isRangeDash() bool {
	return m.b == '-' && !m.escaped
}

func unescapeClass(s string) ([]classMember, error) {
	members := make([]classMember, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			members = append(members, classMember{b: s[i]})
			continue
		}
		i++
		if i >= len(s) {
			return nil, errors.New("trailing backslash")
		}
		switch s[i] {
		case 'n':
			members = append(members, classMember{b: '\n', escaped: true})
		case 't':
			members = append(members, classMember{b: '\t', escaped: true})
		case 'r':
			members = append(members, classMember{b: '\r', escaped: true})
		case 'x':
			if i+2 >= len(s) {
				return nil, errors.New("short \\x escape")
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad \\x escape %q: %w", s[i+1:i+3], err)
			}
			members = append(members, classMember{b: byte(v), escaped: true})
			i += 2
		default:
			members = append(members, classMember{b: s[i], escaped: true})
		}
	}
	return members, nil
}
