// Package vm implements the Universal Machine: a 14-instruction,
// register-based, word-oriented abstract machine.
//
// Instruction format
//
// Every instruction is a 32-bit word. There are two forms:
//
//	standard: <OP:4><unused:19><A:3><B:3><C:3>
//	load-value: <OP:4><A:3><value:25>
//
// OP occupies the top 4 bits (28..31). The standard form packs three
// 3-bit register indices in the low 9 bits (A at bit 6, B at bit 3, C
// at bit 0). The load-value form instead packs a register index at
// bit 25 followed by a 25-bit immediate in the low bits.
package vm

// Opcode identifies one of the fourteen defined operations. Values 14
// and 15 are never assigned a mnemonic; decoding one yields an
// instruction that fails at dispatch time.
type Opcode uint32

const (
	OpCMov Opcode = iota
	OpLoad
	OpStore
	OpAdd
	OpMul
	OpDiv
	OpNand
	OpHalt
	OpMapSegment
	OpUnmapSegment
	OpOutput
	OpInput
	OpLoadProgram
	OpLoadValue
)

// field describes a bitfield within an instruction word: width bits
// starting at lsb.
type field struct {
	width uint32
	lsb   uint32
}

var (
	fieldOP = field{width: 4, lsb: 28}
	fieldA  = field{width: 3, lsb: 6}
	fieldB  = field{width: 3, lsb: 3}
	fieldC  = field{width: 3, lsb: 0}
	fieldRL = field{width: 3, lsb: 25}
	fieldVL = field{width: 25, lsb: 0}
)

func (f field) get(w uint32) uint32 {
	mask := uint32(1)<<f.width - 1
	return (w >> f.lsb) & mask
}

// Instruction is a decoded instruction word. Only the fields relevant
// to Op are meaningful; callers dispatch on Op before consulting A/B/C
// or RL/VL.
type Instruction struct {
	Op      Opcode
	A, B, C uint32
	RL      uint32
	VL      uint32
}

// Decode extracts every field of a 32-bit instruction word. It never
// fails: undefined opcodes decode cleanly into an Instruction whose Op
// is 14 or 15, and dispatch rejects them as a failed instruction.
func Decode(w uint32) Instruction {
	return Instruction{
		Op: Opcode(fieldOP.get(w)),
		A:  fieldA.get(w),
		B:  fieldB.get(w),
		C:  fieldC.get(w),
		RL: fieldRL.get(w),
		VL: fieldVL.get(w),
	}
}
