// Package check contains the individual validation checks for addrcheck.
// Each type implements the checker interface defined in validator.go.
// These types can be used directly, but the recommended approach is
// to run them through the Validator in the github.com/optimode/addrcheck
// package, which handles discovery, concurrency and result merging.
package check
