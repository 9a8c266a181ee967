/*
Package ref implements the reference registry that lets one declaration point
at another regardless of the order in which they are declared.

A Registry is scoped to a single render. Handles are minted from it while the
element tree is evaluated, and each handle is bound exactly once by the
declaration that owns it. Reading a handle produces a Path, a deferred dotted
reference such as `demo_vpc.main.id`, which only becomes text when Resolve is
called. Resolution therefore happens after the whole tree has been evaluated,
which is what makes forward references safe.

Paths deliberately do not implement fmt.Stringer: turning one into text must go
through Resolve so that an unbound handle is reported instead of silently
printed.
*/
package ref
