// Package token renders scalar values as text literals.
//
// It supplies the quoting and escaping primitives used by the hocon
// renderer: NeedsQuote decides whether a string can be written bare,
// Quote produces an escaped double quoted literal, and Literal renders
// any scalar ir.Node under a Quoting mode.
package token
