// Package cpu implements the cycle stepped HexaCore processor.
//
// The processor has four 16-bit registers (ra-rd) whose 8-bit halves are
// separately addressable, a status register, a 24-bit banked program
// counter and an upward growing stack in STACK_PAGE. Each call to
// Cpu.Cycle() performs at most one bus transaction, described on Pins,
// which the caller resolves before the next call.
//
// Opcodes are assigned by a Table, loaded from JSON or Starlark, or the
// built-in DefaultTable().
package cpu
