package domain

// SurplusThreshold is the minimum owned quantity at which copies of a
// card become tradeable: owners always keep one copy for themselves.
const SurplusThreshold = 2

// MaxAdjustQuantity bounds a single collection adjustment.
const MaxAdjustQuantity = 10000
