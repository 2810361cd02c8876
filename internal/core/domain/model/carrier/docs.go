// Package carrier contains the Carrier aggregate: a registered logistics
// provider keyed by its principal identity. The package owns the capacity
// invariant (positive maximum, load within bounds) and the mutations a
// carrier may perform on its own record — availability and location.
package carrier
