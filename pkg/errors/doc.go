// Package errors defines the error kinds reported by the node packages.
//
// Every structural operation in nodeclass either succeeds or fails with an
// *Error carrying one of two kinds:
//
//   - invalid_argument: a nil node, a node added to itself, a node that is
//     not related to the receiver the way the call claims, or an invalid
//     path step.
//   - precondition_failed: the receiver is not in the structural state the
//     operation needs, such as Remove on a node without a parent.
//
// Failures are raised before any state changes, so a failed call leaves the
// hierarchy exactly as it was.
//
// # Matching
//
// Use the standard library to test for a kind:
//
//	if err := parent.RemoveChild(n); errors.Is(err, nodeerrors.ErrInvalidArgument) {
//	    // n was not a child of parent
//	}
//
// Lookups that simply find nothing are not errors; tree.Node.Child returns a
// nil node and a nil error in that case.
package errors
