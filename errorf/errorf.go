// Package errorf constructs errors with fmt.Errorf semantics (including %w
// wrapping) and logs them at the chosen level at the site they are created.
package errorf

import (
	"hexstream.lol/lol"
)

var F, E, W, I, D, T lol.Err

func init() {
	F, E, W, I, D, T = lol.Main.Errorf.F, lol.Main.Errorf.E, lol.Main.Errorf.W,
		lol.Main.Errorf.I, lol.Main.Errorf.D, lol.Main.Errorf.T
}
