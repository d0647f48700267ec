package vm

// NumRegisters is the fixed number of general-purpose registers.
const NumRegisters = 8

// Registers is the register file: eight 32-bit words, indexed 0-7.
// Register fields in an instruction are always 3 bits wide, so every
// index produced by Decode is in range by construction.
type Registers [NumRegisters]uint32
