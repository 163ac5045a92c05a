// @focus: #entities { projectile }
package components

// Projectile travels from the formation toward the horizon
// X is the cached screen position recomputed from NX after every move
type Projectile struct {
	X    float64
	Y    float64
	NX   float64
	Dead bool
}
