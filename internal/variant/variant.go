package variant

import (
	"path/filepath"
	"strings"
)

// Variant identifies which Salt package a hook invocation cleans up after.
type Variant string

// The four packages that ship a copy of the hook.
const (
	Master Variant = "master"
	Minion Variant = "minion"
	Syndic Variant = "syndic"
	Common Variant = "common"
)

// FromProgram derives the variant from the name the hook was invoked under.
// The name is reduced to its basename, truncated at the first ".", and the
// token after the first "-" is taken: "salt-master.postrm" yields "master".
// No validation happens here; an unresolvable name falls through as-is and
// the dispatcher rejects it.
func FromProgram(name string) Variant {
	base := filepath.Base(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if i := strings.IndexByte(base, '-'); i >= 0 {
		base = base[i+1:]
	}
	return Variant(base)
}

// Known reports whether v names one of the four shipped packages.
func (v Variant) Known() bool {
	switch v {
	case Master, Minion, Syndic, Common:
		return true
	}
	return false
}

// String returns the variant name.
func (v Variant) String() string {
	return string(v)
}
