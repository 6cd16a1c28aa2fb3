// Package straights extracts 5-digit straights from free-form text and
// reduces them to boxes for permutation comparison.
//
// A straight is an ordered string of exactly five decimal digits ("08949").
// Its box is the same five digits sorted ascending, so two straights share a
// box exactly when one is a permutation of the other:
//
//	a, _ := straights.Normalize("08949")
//	b, _ := straights.Normalize("09498")
//	a == b // true, both are (0,4,8,9,9)
//
// Extraction is permissive. Digits may be separated by any run of non-digit
// characters, so "17488", "1-7-4-8-8" and "1, 7,4 88" all yield "17488".
// Text with fewer than five digits yields nothing and is never an error.
package straights
