// @focus: #entities { boss }
package components

// Boss is a large multi-hit enemy
// Health is only reduced by projectiles; a boss reaching the formation costs its remaining health in instances
type Boss struct {
	NX     float64
	Y      float64
	Health int
	Dead   bool
}
