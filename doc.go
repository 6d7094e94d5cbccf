// package astamboly provides an x86-64 instruction encoder in Go
//
// An instruction is a mnemonic with up to two arguments. Encoding one runs four stages:
// the operand size is resolved (registers carry a size, size-less memory and immediates
// inherit it), the instruction is normalized (MOV r64, imm32 with a non-negative immediate
// becomes MOV r32, imm32), the opcode is looked up in a Table, and the prefixes, opcode,
// ModRM/SIB bytes, displacement and immediate are emitted.
//
// usage example:
//
// 	package example
//
// 	import (
// 		"fmt"
//
// 		// Importing everything from the package into the current scope
// 		// makes for less noise:
// 		. "github.com/mahanfarzaneh2000/Astamboly"
// 	)
//
// 	func Sum() ([]byte, error) {
// 		asm := NewAssembler(nil)
//
// 		asm.Inst(MOV, RAX, Ptr(RDI, 8))                    // RAX := [RDI+8]
// 		asm.Inst(ADD, RAX, PtrIndex(RDI, RCX, 8, 16))      // RAX += [RDI+RCX*8+16]
// 		asm.Inst(CMP, Mem{Base: RSI, Width: 4}, Imm8(-1))  // CMP dword ptr [RSI], -1
// 		asm.Inst(RET)                                      // return
// 		if asm.Err() != nil {
// 			return nil, asm.Err()
// 		}
// 		return asm.Code(), nil
// 	}
//
// Single instructions can be encoded without an assembler:
//
// 	code, err := Encode(Inst2(MOV, Mem{Base: R13, Disp: 300}, RBX))
// 	// code = 0x49 0x89 0x9d 0x2c 0x01 0x00 0x00
//
// The execmem package maps encoded code into executable memory, and the disasm package
// decodes it again.
package astamboly
