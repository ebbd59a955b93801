// Package minimize locates a local minimum of a univariate function within
// a bracket, without derivatives.
//
// Brent combines golden-section steps (guaranteed geometric shrinkage) with
// inverse-parabolic interpolation (fast convergence near a smooth minimum),
// per Brent's classical algorithm
// (https://phys.uri.edu/nigh/NumRec/bookfpdf/f10-2.pdf). There is no
// iteration cap: the tolerance-scaled stopping rule is proven to terminate,
// including for degenerate inputs such as a constant function.
//
// ByInspection is the blunt alternative: sample n evenly spaced points and
// take the smallest; useful to seed a bracket or sanity-check a result.
//
// A minima bracket can be found with bracket.FindMin.
package minimize
