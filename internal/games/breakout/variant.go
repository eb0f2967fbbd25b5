package breakout

// Variant selects the scoring rules.
type Variant struct {
	ID          string
	Title       string
	ScoreBricks bool
	WinOnClear  bool
}

var (
	// Classic counts nothing and never ends in a win: clear the field and
	// the ball keeps bouncing until it is lost.
	Classic = Variant{ID: "classic", Title: "Brick Breaker"}

	// Scored awards a point per brick and is won by clearing the field.
	Scored = Variant{ID: "scored", Title: "Brick Breaker (Scored)", ScoreBricks: true, WinOnClear: true}
)

// Variants lists every variant in menu order.
func Variants() []Variant {
	return []Variant{Classic, Scored}
}

// Rules returns controller rules for the variant with lives lives.
func (v Variant) Rules(lives int) Rules {
	return Rules{InitialLives: lives, ScoreBricks: v.ScoreBricks, WinOnClear: v.WinOnClear}
}
