// Package clock provides a Clock abstraction over the time package together
// with a deterministic Fake for tests: the fake's time only moves when
// Advance is called, and pending timers fire synchronously from Advance in
// deadline order.
package clock
