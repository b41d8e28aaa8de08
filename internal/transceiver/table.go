// Package transceiver decodes the STM32WL sub-GHz radio SPI command
// protocol. It aggregates chip-select-delimited byte transfers into
// transactions and classifies each one by its leading opcode.
package transceiver

// UnknownCommand names opcodes without a command table entry. A
// transaction with an unknown opcode still decodes as a command, never
// as an error.
const UnknownCommand = "Unknown"

// CommandTable maps command opcodes (the first MOSI byte of a
// transaction) to command names.
type CommandTable map[byte]string

// Name returns the command name for op, or UnknownCommand when op has
// no entry.
func (t CommandTable) Name(op byte) string {
	if name, ok := t[op]; ok {
		return name
	}
	return UnknownCommand
}

// Merge returns a copy of t with overrides applied on top. The receiver
// is left untouched.
func (t CommandTable) Merge(overrides map[byte]string) CommandTable {
	merged := make(CommandTable, len(t)+len(overrides))
	for op, name := range t {
		merged[op] = name
	}
	for op, name := range overrides {
		merged[op] = name
	}
	return merged
}

// RegisterTable maps 16-bit register addresses to register names. The
// analyzer itself classifies by opcode only; the register table is
// exposed for consumers such as the tables command.
type RegisterTable map[uint16]string

// Name returns the register name for addr and whether addr has an entry.
func (t RegisterTable) Name(addr uint16) (string, bool) {
	name, ok := t[addr]
	return name, ok
}

// Merge returns a copy of t with overrides applied on top.
func (t RegisterTable) Merge(overrides map[uint16]string) RegisterTable {
	merged := make(RegisterTable, len(t)+len(overrides))
	for addr, name := range t {
		merged[addr] = name
	}
	for addr, name := range overrides {
		merged[addr] = name
	}
	return merged
}
