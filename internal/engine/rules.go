package engine

// Rules selects rule strictness where the reference behaviour is known to
// fall short of the laws of chess.
type Rules struct {
	// StrictCastling forbids castling across a square attacked by the
	// opponent. When false, only the king's current square is checked.
	StrictCastling bool `mapstructure:"strict_castling" json:"strictCastling"`

	// VerifySelfCheck makes the validator reject moves that leave the
	// mover's own king attacked, matching the generator.
	VerifySelfCheck bool `mapstructure:"verify_self_check" json:"verifySelfCheck"`
}

// DefaultRules returns the full laws of chess.
func DefaultRules() Rules {
	return Rules{
		StrictCastling:  true,
		VerifySelfCheck: true,
	}
}

// LegacyRules reproduces the lenient behaviour: castling through an
// attacked square is allowed and the validator skips the self-check test.
// It differs in one respect: a king left attacked that way is never
// captured. Neither the generator nor the validator offers the capture,
// so the game continues with that side in check.
func LegacyRules() Rules {
	return Rules{}
}

// IsLegacy returns true if every strictness option is off.
func (r Rules) IsLegacy() bool {
	return !r.StrictCastling && !r.VerifySelfCheck
}
