package component

import (
	"github.com/born-ml/photon/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// PowerMatrix returns the real part of S·Sᴴ at wavelength index w, where
// S = rS + i·iS:
//
//	rS[w]·rS[w]ᵀ + iS[w]·iS[w]ᵀ
//
// For a lossless component the diagonal is 1: all power entering a port
// leaves the component.
func PowerMatrix(rS, iS *tensor.Tensor, w int) *mat.Dense {
	re := rS.Block(w)
	im := iS.Block(w)

	var p, q mat.Dense
	p.Mul(re, re.T())
	q.Mul(im, im.T())
	p.Add(&p, &q)
	return &p
}

// Lossless reports whether the diagonal of PowerMatrix equals 1 within tol
// at every wavelength.
func Lossless(rS, iS *tensor.Tensor, tol float64) bool {
	for w := 0; w < rS.Shape()[0]; w++ {
		p := PowerMatrix(rS, iS, w)
		n, _ := p.Dims()
		for i := 0; i < n; i++ {
			if d := p.At(i, i) - 1; d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}
