package vm

import "fmt"

// Disassemble renders a decoded instruction word as an assembly-like
// mnemonic, for trace and diagnostic output only. It has no bearing on
// execution semantics.
func Disassemble(word uint32) string {
	instr := Decode(word)
	switch instr.Op {
	case OpCMov:
		return fmt.Sprintf("cmov r%d, r%d, r%d", instr.A, instr.B, instr.C)
	case OpLoad:
		return fmt.Sprintf("load r%d, [r%d, r%d]", instr.A, instr.B, instr.C)
	case OpStore:
		return fmt.Sprintf("store [r%d, r%d], r%d", instr.A, instr.B, instr.C)
	case OpAdd:
		return fmt.Sprintf("add r%d, r%d, r%d", instr.A, instr.B, instr.C)
	case OpMul:
		return fmt.Sprintf("mul r%d, r%d, r%d", instr.A, instr.B, instr.C)
	case OpDiv:
		return fmt.Sprintf("div r%d, r%d, r%d", instr.A, instr.B, instr.C)
	case OpNand:
		return fmt.Sprintf("nand r%d, r%d, r%d", instr.A, instr.B, instr.C)
	case OpHalt:
		return "halt"
	case OpMapSegment:
		return fmt.Sprintf("map r%d, r%d", instr.B, instr.C)
	case OpUnmapSegment:
		return fmt.Sprintf("unmap r%d", instr.C)
	case OpOutput:
		return fmt.Sprintf("output r%d", instr.C)
	case OpInput:
		return fmt.Sprintf("input r%d", instr.C)
	case OpLoadProgram:
		return fmt.Sprintf("loadprogram r%d, r%d", instr.B, instr.C)
	case OpLoadValue:
		return fmt.Sprintf("loadvalue r%d, %d", instr.RL, instr.VL)
	default:
		return fmt.Sprintf("<illegal opcode %d>", instr.Op)
	}
}
