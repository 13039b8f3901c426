package chpsim

import "errors"

// ErrInvalidArgument is wrapped by every domain/configuration error the
// simulator raises: an out-of-range qubit index, a duplicate qubit in a
// multi-qubit gate, an unrecognized gate name, a targets/arity
// mismatch, or a bias outside [0,1].
var ErrInvalidArgument = errors.New("chpsim: invalid argument")

// ErrOutOfMemory is returned by New when the requested qubit count is
// large enough that allocating its tableau is refused outright rather
// than risking an unrecoverable allocation failure deep inside
// bits256.NewMatrix.
var ErrOutOfMemory = errors.New("chpsim: out of memory")

// maxQubits bounds Simulator construction. The tableau holds two N x 2N
// bit matrices; at this size each already exceeds a gigabyte, well past
// any plausible Clifford circuit and a reasonable place to fail fast
// rather than let the allocator decide.
const maxQubits = 1 << 20
