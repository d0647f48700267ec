package vm

import "fmt"

// Machine is a complete Universal Machine instance: registers, the
// segmented memory manager, the program counter, and the host byte
// I/O it talks to.
type Machine struct {
	Regs Registers
	Mem  *Memory
	PC   uint32

	In  ByteSource
	Out ByteSink
}

// New returns a Machine with the given program installed as segment
// zero and wired to the given byte source and sink. Either may be nil
// if the program never executes Input/Output.
func New(program []uint32, in ByteSource, out ByteSink) *Machine {
	mem := NewMemory()
	mem.Install(program)
	return &Machine{Mem: mem, In: in, Out: out}
}

// Run executes instructions until Halt or a failed instruction. It
// returns ErrHalted on normal termination (callers should treat that
// as success, exit code 0) or a wrapped failed-instruction /
// ErrIOFailure sentinel otherwise.
func (m *Machine) Run() error {
	for {
		if err := m.Step(); err != nil {
			return err
		}
	}
}

// Step fetches, decodes, and executes exactly one instruction,
// advancing PC according to the program-counter discipline in
// spec.md section 4.4. It returns ErrHalted after executing Halt.
func (m *Machine) Step() error {
	word, err := m.Mem.Read(0, m.PC)
	if err != nil {
		return err
	}
	instr := Decode(word)

	jumped, err := m.execute(instr)
	if err != nil {
		return err
	}
	if !jumped {
		m.PC++
	}
	return nil
}

// execute dispatches a single decoded instruction. jumped reports
// whether the instruction already set PC to its intended target (only
// LoadProgram does this); the caller skips its own post-increment in
// that case.
func (m *Machine) execute(instr Instruction) (jumped bool, err error) {
	r := &m.Regs
	switch instr.Op {
	case OpCMov:
		if r[instr.C] != 0 {
			r[instr.A] = r[instr.B]
		}

	case OpLoad:
		v, err := m.Mem.Read(r[instr.B], r[instr.C])
		if err != nil {
			return false, err
		}
		r[instr.A] = v

	case OpStore:
		if err := m.Mem.Write(r[instr.A], r[instr.B], r[instr.C]); err != nil {
			return false, err
		}

	case OpAdd:
		r[instr.A] = r[instr.B] + r[instr.C]

	case OpMul:
		r[instr.A] = uint32((uint64(r[instr.B]) * uint64(r[instr.C])) % (1 << 32))

	case OpDiv:
		if r[instr.C] == 0 {
			return false, fmt.Errorf("%w: r%d", ErrDivideByZero, instr.C)
		}
		r[instr.A] = r[instr.B] / r[instr.C]

	case OpNand:
		r[instr.A] = ^(r[instr.B] & r[instr.C])

	case OpHalt:
		return false, ErrHalted

	case OpMapSegment:
		r[instr.B] = m.Mem.Map(r[instr.C])

	case OpUnmapSegment:
		if err := m.Mem.Unmap(r[instr.C]); err != nil {
			return false, err
		}

	case OpOutput:
		v := r[instr.C]
		if v > 255 {
			return false, fmt.Errorf("%w: %d", ErrOutputRange, v)
		}
		if m.Out == nil {
			return false, fmt.Errorf("%w: no byte sink configured", ErrIOFailure)
		}
		if err := m.Out.WriteByte(byte(v)); err != nil {
			return false, fmt.Errorf("%w: %s", ErrIOFailure, err.Error())
		}

	case OpInput:
		if m.In == nil {
			return false, fmt.Errorf("%w: no byte source configured", ErrIOFailure)
		}
		b, ok, err := m.In.ReadByte()
		if err != nil {
			return false, fmt.Errorf("%w: %s", ErrIOFailure, err.Error())
		}
		if !ok {
			r[instr.C] = 0xFFFFFFFF
		} else {
			r[instr.C] = uint32(b)
		}

	case OpLoadProgram:
		if r[instr.B] != 0 {
			if err := m.Mem.DuplicateIntoZero(r[instr.B]); err != nil {
				return false, err
			}
		}
		m.PC = r[instr.C]
		return true, nil

	case OpLoadValue:
		r[instr.RL] = instr.VL

	default:
		return false, fmt.Errorf("%w: %d", ErrIllegalOpcode, instr.Op)
	}
	return false, nil
}
