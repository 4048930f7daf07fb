package param

// Gradients maps parameters to the accumulated derivative of a scalar loss.
//
// Only Trainable parameters are ever recorded, so optimizers can iterate the
// map without checking the variant.
type Gradients map[*Parameter]float64

// Accumulate adds g to the gradient of p. Fixed parameters are ignored.
func (gs Gradients) Accumulate(p *Parameter, g float64) {
	if p == nil || !p.Trainable() {
		return
	}
	gs[p] += g
}

// Get returns the gradient for p and whether one was recorded.
func (gs Gradients) Get(p *Parameter) (float64, bool) {
	g, ok := gs[p]
	return g, ok
}
