// Package stress implements the host-side torn-value verification harness.
//
// The harness hammers one shared Cell from many goroutines: each writer
// repeatedly stores a constant distinct from every other writer's, while
// readers continuously load and check that every observed byte is either one
// of those constants or the initial zero. A byte outside that set means the
// load overlapped a store and mixed bits from two writes, which is exactly
// what the atomic primitive must make impossible.
//
// AVR itself cannot run this harness (there is nothing to race against a
// single core mid-instruction); the harness validates the host fallback and
// documents the property the AVR instruction gives by construction.
//
// The avrstress CLI drives this package from a TOML config file.
package stress
