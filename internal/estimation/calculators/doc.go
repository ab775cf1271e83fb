// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator contributes one multiplicative factor to every audit track estimate
// (e.g. the emphasis of the project's design style, or the depth its maturity calls for).
// Calculators are designed to be composed via the estimation.Engine and read their
// constants from estimation.Tables.
package calculators
