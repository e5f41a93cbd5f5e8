// Package olehost wraps the automation host's object model behind a narrow,
// fixed capability set.
//
// The host's native surface is dynamically typed and stateful. Everything the
// engine needs from it is expressed here as five small interfaces (launch,
// open, enumerate, remove, close/quit), so the rest of the codebase never
// depends on the host's full object model. The real implementation drives the
// installed application over COM; see [NewFactory].
package olehost
