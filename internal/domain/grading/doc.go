// Package grading turns raw marks and letter grades into grade points.
//
// The grading rules live in a Scale value rather than in code:
//
//   - Marks rungs: an ordered list of (threshold, point, letter) triples,
//     evaluated top-down, first match wins. Anything that matches no rung
//     (negative marks, NaN) falls through to the scale's Fallback grade.
//   - Letters: a letter -> point table used when grades are entered directly.
//   - Bands: performance labels ("Outstanding", "Excellent", ...) for averages.
//
// DefaultScale returns the 10-point scale:
//
//	marks  >=90  [80,90) [70,80) [60,70) [50,60) [45,50) [40,45) else
//	letter  O     A+      A       B+      B       C       D      F
//	point   10    9       8       7       6       5       4      0
//
// A Resolver wraps a Scale and never returns errors: unknown letters resolve
// to (0, false) and out-of-range marks fall into the top or fallback rung.
//
//	r := grading.NewResolver(grading.DefaultScale())
//	g := r.ResolveMarks(82)         // {Point: 9, Letter: "A+"}
//	g, ok := r.ResolveLetter(" b+ ") // {Point: 7, Letter: "B+"}, true
//
// Scale.Validate is the only fallible operation; it is meant for scales
// loaded from configuration files.
package grading
