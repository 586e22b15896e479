// Package diversity implements §4.J's diversity-functions layer: every
// frequency-only ("non-disparity") index over a type graph's relative
// proportions, every distance-weighted ("disparity") index over a
// distmatrix.Matrix, and the functional indices built over an mst.MST.
//
// Formulas given verbatim in spec.md (Shannon, the Hill/Rényi/Patil–Taillie
// family, Simpson, Berger–Parker, Brillouin, McIntosh, Camargo 1993,
// Pairwise, Stirling, Leinster–Cobbold, and the three Villéger functional
// indices) are transcribed directly. A handful of named indices
// (Heip, Alatalo 1981, Molinari 1989, Bulla 1994, the three Pielou
// citations, Williams 1964, Smith & Wilson 1996, Junge 1994, Ricotta–Szeidl,
// Chao et al., Scheiner) are specified only by citation, with no formula
// body in the retrieved original source; DESIGN.md records that each of
// these follows its standard published closed-form definition rather
// than a reverse-engineered one.
package diversity
