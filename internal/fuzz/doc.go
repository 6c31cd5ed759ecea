// Package fuzztests houses Go fuzz harnesses for plan decoding and the
// import registry. They guard against panics on arbitrary plan files and
// check registry invariants over arbitrary request sequences.
package fuzztests
