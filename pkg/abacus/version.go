// Package abacus holds module-level metadata shared by the CLI and library.
package abacus

// Version is the current release version of the abacus module.
const Version = "0.2.0"
