package combat

import "strings"

// Name identifies a strand character. The set is closed: every behaviour
// table switches over these values.
type Name string

const (
	Solace  Name = "Solace"
	Elowen  Name = "Elowen"
	Kestrel Name = "Kestrel"
	Vex     Name = "Vex"
	Reverie Name = "Reverie"
	Bastion Name = "Bastion"
	Lumen   Name = "Lumen"
	Omen    Name = "Omen"
	Sage    Name = "Sage"
	Arbiter Name = "Arbiter"
	Riposte Name = "Riposte"
	Nyx     Name = "Nyx"
	Mira    Name = "Mira"
	Ariadne Name = "Ariadne"
)

var allNames = []Name{
	Solace, Elowen, Kestrel, Vex, Reverie, Bastion, Lumen,
	Omen, Sage, Arbiter, Riposte, Nyx, Mira, Ariadne,
}

// AllNames returns the roster in declaration order.
func AllNames() []Name {
	return append([]Name(nil), allNames...)
}

func (n Name) Valid() bool {
	for _, x := range allNames {
		if x == n {
			return true
		}
	}
	return false
}

// ParseName matches case-insensitively against the roster.
func ParseName(s string) (Name, bool) {
	for _, x := range allNames {
		if strings.EqualFold(string(x), strings.TrimSpace(s)) {
			return x, true
		}
	}
	return "", false
}

// IsHealer reports whether the character carries the healer role.
func IsHealer(n Name) bool {
	return n == Solace || n == Elowen
}
