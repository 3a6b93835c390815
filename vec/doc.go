// Package vec provides Vector, a growable array with an explicit length and a
// power-of-two capacity.
//
// The zero Vector is empty and ready to use. The first operation that needs
// storage allocates two slots; every later growth doubles the capacity until
// it covers the request. Slots between the length and the capacity are
// zeroed when growth creates them.
//
// Any operation that can grow a Vector (Push, Resize, Grow) may move its
// storage. Element pointers returned by Ref and views returned by Data or From
// must not be used after such a call.
//
// Misuse (indexing past the length, popping an empty Vector) is a programmer
// error and panics with a *Fault naming the offending call site. Those checks
// are compiled out when building with the vecrelease tag. Capacity overflow and
// allocation failure always panic. Callers that prefer an error over a panic
// use Get and TryPop, or run the code under Catch.
//
// A Vector has exactly one owner and is not safe for concurrent use.
package vec
