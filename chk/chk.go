// Package chk is a convenience shortcut for the lol.Logger error checks. Each
// level returns true when the error is non-nil, printing it if the level is
// enabled.
package chk

import (
	"hexstream.lol/lol"
)

var F, E, W, I, D, T lol.Chk

func init() {
	F, E, W, I, D, T = lol.Main.Check.F, lol.Main.Check.E, lol.Main.Check.W, lol.Main.Check.I,
		lol.Main.Check.D, lol.Main.Check.T
}
