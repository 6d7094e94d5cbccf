package astamboly

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// Hard-coded instruction sequences are manually verified through the following tools:
//   * ODA: https://onlinedisassembler.com/odaweb/
//   * Shell-Storm: http://shell-storm.org/online/Online-Assembler-and-Disassembler/

func TestInstName(t *testing.T) {
	if ADC.Name() != "ADC" {
		t.Fatalf("ADC.Name() = %s", ADC.Name())
	}
	if MOV.Name() != "MOV" {
		t.Fatalf("MOV.Name() = %s", MOV.Name())
	}
	if XOR.Name() != "XOR" {
		t.Fatalf("XOR.Name() = %s", XOR.Name())
	}
	if Inst(0).Name() != "INVALID" {
		t.Fatalf("Inst(0).Name() = %s", Inst(0).Name())
	}
	for _, inst := range Mnemonics() {
		for _, e := range inst.encs() {
			if e.instid() != inst.Id() {
				t.Fatalf("%s: encoding belongs to mnemonic %d", inst.Name(), e.instid())
			}
		}
	}
}

func TestEncode(t *testing.T) {
	asm := NewAssembler(make([]byte, 256))
	_expect := func(s string) {
		decoded, err := x86asm.Decode(asm.Code(), 64)
		if err != nil {
			t.Fatal(err)
		}
		if decoded.Len != len(asm.Code()) {
			t.Fatalf("decoded %d of %d bytes for %s: %#x", decoded.Len, len(asm.Code()), s, asm.Code())
		}
		intel := x86asm.IntelSyntax(decoded, 0, nil)
		if intel != s {
			t.Logf("encoded inst = %#x\n", asm.Code())
			t.Fatalf("decoded inst = %s != %s", intel, s)
		}
	}
	check := func(expect string, inst Inst, args ...Arg) {
		asm.Reset(nil)
		if err := asm.Inst(inst, args...); err != nil {
			t.Fatal(err)
		}
		_expect(expect)
	}
	checkregreg := func(expect string, inst Inst, dst, src Reg) {
		asm.Reset(nil)
		if err := asm.RR(inst, dst, src); err != nil {
			t.Fatal(err)
		}
		_expect(expect)
	}
	checkregmem := func(expect string, inst Inst, dst Reg, src Mem) {
		asm.Reset(nil)
		if err := asm.RM(inst, dst, src); err != nil {
			t.Fatal(err)
		}
		_expect(expect)
	}
	checkmemreg := func(expect string, inst Inst, dst Mem, src Reg) {
		asm.Reset(nil)
		if err := asm.MR(inst, dst, src); err != nil {
			t.Fatal(err)
		}
		_expect(expect)
	}
	checkregimm := func(expect string, inst Inst, dst Reg, imm ImmArg) {
		asm.Reset(nil)
		if err := asm.RI(inst, dst, imm); err != nil {
			t.Fatal(err)
		}
		_expect(expect)
	}
	checkmemimm := func(expect string, inst Inst, dst Mem, imm ImmArg) {
		asm.Reset(nil)
		if err := asm.MI(inst, dst, imm); err != nil {
			t.Fatal(err)
		}
		_expect(expect)
	}

	check("mov al, 0x1", MOV, AL, Imm8(1))
	checkregimm("mov al, 0x1", MOV, AL, Imm8(1))
	check("mov ah, 0x1", MOV, AH, Imm8(1))
	check("mov ax, 0x1", MOV, AX, Imm8(1))
	checkregimm("mov ax, 0x1", MOV, AX, Imm32(1))
	check("mov eax, 0x1", MOV, RAX, Imm32(1)) // narrowed to a 32-bit register
	check("mov rax, 0x7fffffffffffffff", MOV, RAX, Imm64(0x7fffffffffffffff))
	checkregimm("mov rax, 0x7fffffffffffffff", MOV, RAX, Imm64(0x7fffffffffffffff))
	check("mov rax, r13", MOV, RAX, R13)
	checkregreg("mov rax, r13", MOV, RAX, R13)
	checkregreg("mov r13, rax", MOV, R13, RAX)
	checkregreg("mov sil, dil", MOV, SIL, DIL)
	check("add rax, rbx", ADD, RAX, RBX)
	checkregreg("add ax, bx", ADD, AX, BX)
	check("add rax, 0x1", ADD, RAX, Imm8(1))
	checkregimm("add eax, 0x12345", ADD, EAX, Imm32(0x12345))
	check("add qword ptr [rax], 0x1", ADD, Mem{Base: RAX, Width: 8}, Imm8(1))
	checkmemimm("add qword ptr [rax], 0x1", ADD, Mem{Base: RAX, Width: 8}, Imm8(1))
	check("xor rax, rbx", XOR, RAX, RBX)
	checkregreg("sub r8d, r9d", SUB, R8D, R9D)
	checkregreg("and cl, dl", AND, CL, DL)
	check("mov rax, qword ptr [rbx]", MOV, RAX, Mem{Base: RBX})
	checkregmem("mov rax, qword ptr [rbx]", MOV, RAX, Mem{Base: RBX})
	check("mov qword ptr [rax], rbx", MOV, Mem{Base: RAX}, RBX)
	checkmemreg("mov qword ptr [rax], rbx", MOV, Mem{Base: RAX}, RBX)
	check("mov qword ptr [r13], rbx", MOV, Mem{Base: R13}, RBX)
	checkmemreg("mov qword ptr [r13], rbx", MOV, Mem{Base: R13}, RBX)
	checkmemreg("mov qword ptr [r13+0x12c], rbx", MOV, Mem{Base: R13, Disp: 300}, RBX)
	checkregmem("mov rax, qword ptr [rbp-0x8]", MOV, RAX, Mem{Base: RBP, Disp: -8})
	checkregmem("mov rax, qword ptr [rsp]", MOV, RAX, Ptr(RSP, 0))
	checkregmem("mov rax, qword ptr [rsp+0x8]", MOV, RAX, Ptr(RSP, 8))
	checkregmem("mov rax, qword ptr [r12+0x10]", MOV, RAX, Ptr(R12, 16))
	checkregmem("mov rax, qword ptr [rbp]", MOV, RAX, Ptr(RBP, 0))
	check("mov rax, qword ptr [rbx+r15*1]", MOV, RAX, Mem{Base: RBX, Index: R15})
	checkregmem("mov rax, qword ptr [rbx+r15*1]", MOV, RAX, Mem{Base: RBX, Index: R15})
	check("mov rax, qword ptr [rbx+r15*2]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2})
	checkregmem("mov rax, qword ptr [rbx+r15*2+0x8]", MOV, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: 8})
	checkregmem("mov rax, qword ptr [rbx+r15*2+0x12c]", MOV, RAX, PtrIndex(RBX, R15, 2, 300))
	checkregmem("mov eax, dword ptr [r8+r12*8-0x10]", MOV, EAX, PtrIndex(R8, R12, 8, -16))
	check("lea rax, ptr [rbx+r15*2+0x8]", LEA, RAX, Mem{Base: RBX, Index: R15, Scale: 2, Disp: 8})
	checkregmem("lea rax, ptr [rbx+r15*2+0x8]", LEA, RAX, PtrIndex(RBX, R15, 2, 8))
	check("jmp qword ptr [rax]", JMP, Mem{Base: RAX})
	check("jmp qword ptr [rax]", JMP, Mem{Base: RAX, Width: 8})
	check("call rax", CALL, RAX)
	check("call r11", CALL, R11)
	check("push rbx", PUSH, RBX)
	check("push r12", PUSH, R12)
	check("pop r15", POP, R15)
	check("push 0x10", PUSH, Imm8(16))
	check("imul rax, rbx", IMUL, RAX, RBX)
	check("imul rax, qword ptr [rbx]", IMUL, RAX, Mem{Base: RBX})
	check("cmove eax, ecx", CMOVE, EAX, ECX)
	check("cmovl r9, qword ptr [rdi+0x8]", CMOVL, R9, Ptr(RDI, 8))
	check("sete al", SETE, AL)
	check("setne sil", SETNE, SIL)
	check("inc qword ptr [rax]", INC, Mem{Base: RAX, Width: 8})
	check("dec ecx", DEC, ECX)
	check("neg r8", NEG, R8)
	check("not byte ptr [rdx]", NOT, Mem{Base: RDX, Width: 1})
	check("div rcx", DIV, RCX)
	check("shl rax, 0x4", SHL, RAX, Imm8(4))
	check("sar edx, 0x1f", SAR, EDX, Imm8(31))
	check("bswap rax", BSWAP, RAX)
	check("bswap r9d", BSWAP, R9D)
	check("test al, 0x1", TEST, AL, Imm8(1))
	check("test rax, rax", TEST, RAX, RAX)
	check("xchg rax, rbx", XCHG, RAX, RBX)
	check("cmp eax, 0x1", CMP, EAX, Imm8(1))
	check("cmp ax, 0x1", CMP, AX, Imm8(1))
	check("cmp qword ptr [rsi], 0x7f", CMP, Mem{Base: RSI, Width: 8}, Imm8(0x7f))
	check("mov byte ptr [rax], 0x5", MOV, Mem{Base: RAX, Width: 1}, Imm32(5))
	check("mov dword ptr [rax], 0x5", MOV, Mem{Base: RAX, Width: 4}, Imm8(5))
	check("ret", RET)
	check("nop", NOP)
	check("hlt", HLT)
	check("cdq", CDQ)
	check("syscall", SYSCALL)
	check("leave", LEAVE)
	check("ud2", UD2)
	check("cpuid", CPUID)

	hex := func(expect string, inst Inst, args ...Arg) {
		asm.Reset(nil)
		if err := asm.Inst(inst, args...); err != nil {
			t.Fatal(err)
		}
		if fmt.Sprintf("%#x", asm.Code()) != expect {
			t.Fatalf("%s %v = %#x != %s", inst.Name(), args, asm.Code(), expect)
		}
	}
	hex("0x4889d8", MOV, RAX, RBX)
	hex("0x49899d2c010000", MOV, Mem{Base: R13, Disp: 300}, RBX)
	hex("0x66813801000000", CMP, Mem{Base: RAX, Width: 2}, Imm8(1))
	hex("0x48c7c0ffffffff", MOV, RAX, Imm8(-1))
	hex("0x4883c0ff", ADD, RAX, Imm8(-1))
	hex("0xcc", INT3)
	hex("0xf390", PAUSE)
	hex("0x0f44c1", CMOVE, EAX, ECX)
	hex("0x40b601", MOV, SIL, Imm8(1))
}

func TestAssemblerErr(t *testing.T) {
	asm := NewAssembler(nil)
	asm.Inst(MOV, RAX, RBX)
	err := asm.Inst(MOV, Mem{Base: RAX}, Imm8(1))
	if !errors.Is(err, ErrAmbiguousSize) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "mov [rax], 0x1") {
		t.Fatalf("error does not name the instruction: %v", err)
	}
	// sticky
	if err := asm.Inst(RET); !errors.Is(err, ErrAmbiguousSize) {
		t.Fatalf("err = %v", err)
	}
	if fmt.Sprintf("%#x", asm.Code()) != "0x4889d8" {
		t.Fatalf("code = %#x", asm.Code())
	}
	asm.Reset(nil)
	if asm.Err() != nil || asm.PC() != 0 {
		t.Fatal("reset did not clear the assembler")
	}
	if err := asm.Inst(MOV, RAX, RBX, RCX); !errors.Is(err, ErrTooManyArgs) {
		t.Fatalf("err = %v", err)
	}
}

func TestAlignPC(t *testing.T) {
	asm := NewAssembler(make([]byte, 256))
	asm.Inst(MOV, RAX, RBX)
	asm.AlignPC(16)
	if len(asm.Code()) != 16 {
		t.Fatalf("len(code) = %d", len(asm.Code()))
	}
	// decode mov
	decoded, err := x86asm.Decode(asm.Code(), 64)
	if err != nil {
		t.Fatal(err)
	}
	intel := x86asm.IntelSyntax(decoded, 0, nil)
	if intel != "mov rax, rbx" {
		t.Logf("encoded inst = %#x\n", asm.Code())
		t.Fatalf("decoded inst = %s != mov rax, rbx", intel)
	}
	// decode nops
	for pc := decoded.Len; pc < len(asm.Code()); pc += decoded.Len {
		decoded, err = x86asm.Decode(asm.Code()[pc:], 64)
		if err != nil {
			t.Fatal(err)
		}
		intel = x86asm.IntelSyntax(decoded, 0, nil)
		if !strings.HasPrefix(intel, "nop") {
			t.Logf("encoded inst = %#x\n", asm.Code())
			t.Fatalf("decoded inst = %s != nop ...", intel)
		}
	}
	// already aligned
	asm.AlignPC(16)
	if len(asm.Code()) != 16 {
		t.Fatalf("len(code) = %d", len(asm.Code()))
	}
}
