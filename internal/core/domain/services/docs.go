// Package services holds domain logic that is derived from aggregates rather than owned by one,
// such as the progress indicator rendered for an order.
package services
