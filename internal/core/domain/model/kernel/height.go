package kernel

// Height is the logical timestamp of the ledger: a monotonically increasing
// sequence value supplied by the execution environment and recorded on every
// created entity. The core never generates heights itself; it stamps whatever
// the clock hands it, which keeps replays deterministic.
type Height uint64
