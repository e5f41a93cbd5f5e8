// Package olehosttest provides in-memory fakes for the olehost interfaces.
//
// The fakes record calls and can be primed with errors, so session and
// engine behavior can be tested on any platform without an automation host.
package olehosttest
