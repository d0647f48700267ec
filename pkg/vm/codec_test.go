package vm

import "testing"

func TestDecodeStandardForm(t *testing.T) {
	// Add r1, r2, r3: op=3, A=1, B=2, C=3.
	word := uint32(3)<<28 | 1<<6 | 2<<3 | 3
	instr := Decode(word)
	if instr.Op != OpAdd {
		t.Fatalf("want OpAdd, got %v", instr.Op)
	}
	if instr.A != 1 || instr.B != 2 || instr.C != 3 {
		t.Fatalf("want A=1 B=2 C=3, got A=%d B=%d C=%d", instr.A, instr.B, instr.C)
	}
}

func TestDecodeLoadValueForm(t *testing.T) {
	word := uint32(0xD0000041) // LoadValue r0, 65
	instr := Decode(word)
	if instr.Op != OpLoadValue {
		t.Fatalf("want OpLoadValue, got %v", instr.Op)
	}
	if instr.RL != 0 {
		t.Fatalf("want RL=0, got %d", instr.RL)
	}
	if instr.VL != 65 {
		t.Fatalf("want VL=65, got %d", instr.VL)
	}
}

func TestDecodeUndefinedOpcodes(t *testing.T) {
	for _, op := range []uint32{14, 15} {
		instr := Decode(op << 28)
		if uint32(instr.Op) != op {
			t.Fatalf("op %d: decoded as %v", op, instr.Op)
		}
	}
}
