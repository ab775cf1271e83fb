// Package estimation defines a pluggable audit effort calculator.
//
// Each adjustment of a track estimate is encapsulated in one specific Calculator, and the
// Engine composes the factors of every registered Calculator multiplicatively, per track.
package estimation
