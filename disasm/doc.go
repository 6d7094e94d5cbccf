// package disasm decodes x86-64 machine code back into Intel syntax.
//
// Code decodes a byte slice, such as the output of an astamboly.Assembler; Func decodes a Go
// function at runtime, such as one pointed at executable memory by the execmem package.
//
// example usage:
//
// 	asm := astamboly.NewAssembler(nil)
// 	asm.Inst(astamboly.MOV, astamboly.RAX, astamboly.Ptr(astamboly.RSP, 8))
// 	asm.Inst(astamboly.RET)
//
// 	lines, err := disasm.Code(asm.Code())
// 	if err != nil {
// 		return err
// 	}
// 	disasm.Fprint(os.Stdout, lines)
// 	// Outputs:
// 	//
// 	//   PC   Bytes       Instruction
// 	//   0000 488b442408  mov rax, qword ptr [rsp+0x8]
// 	//   0005 c3          ret
package disasm
