// Package kernel contains shared value objects used across the domain model:
// the UUID identifier wrapper and the Department workflow participant enum.
// Types in this package are immutable and safe for concurrent use.
package kernel
