// @focus: #entities { powerup }
package components

// Powerup changes the formation size by Value when collected
type Powerup struct {
	NX         float64
	Y          float64
	Value      int // Signed instance delta
	FlashPhase int // Cosmetic blink counter in [0, 2*PowerupFlashPeriod)
	Dead       bool
}

// ValueVisible reports whether the value label is in the lit half of its blink cycle
func (p Powerup) ValueVisible(period int) bool {
	if period <= 0 {
		return true
	}
	return p.FlashPhase < period
}
