package vm

import "errors"

// ErrHalted is returned by Step/Run when the Halt instruction executed
// successfully. It is not a failure: callers should map it to a zero
// exit status.
var ErrHalted = errors.New("vm: halted")

// The following sentinels cover every failed-instruction condition
// named in spec.md section 7. Where there is an offending identifier,
// offset, or value to report, the call site wraps the sentinel with
// fmt.Errorf("%w: ...") so the message carries it, while errors.Is
// still matches the bare sentinel; ErrUnmapZero is returned unwrapped.
var (
	// ErrIllegalOpcode indicates opcode 14 or 15, or any other value
	// outside the fourteen defined operations.
	ErrIllegalOpcode = errors.New("vm: illegal opcode")

	// ErrDivideByZero indicates a Div instruction with r[C] == 0.
	ErrDivideByZero = errors.New("vm: division by zero")

	// ErrUnmappedSegment indicates a segmented access (read, write,
	// unmap, or load-program source) naming an identifier that is not
	// currently mapped.
	ErrUnmappedSegment = errors.New("vm: unmapped segment")

	// ErrOutOfBounds indicates a segmented access whose offset falls
	// outside the addressed segment.
	ErrOutOfBounds = errors.New("vm: offset out of bounds")

	// ErrUnmapZero indicates an attempt to unmap identifier 0, which is
	// permanently mapped for the lifetime of the machine.
	ErrUnmapZero = errors.New("vm: cannot unmap segment zero")

	// ErrOutputRange indicates an Output instruction whose value
	// exceeds 255.
	ErrOutputRange = errors.New("vm: output value exceeds one byte")

	// ErrIOFailure wraps an underlying byte-source/byte-sink error
	// encountered while executing Input or Output.
	ErrIOFailure = errors.New("vm: i/o failure")
)
