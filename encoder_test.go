package astamboly

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func mustEncode(t *testing.T, inst Instruction) []byte {
	t.Helper()
	code, err := Encode(inst)
	if err != nil {
		t.Fatalf("%s: %v", inst, err)
	}
	return code
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected an invariant panic", name)
		}
	}()
	f()
}

func TestEncodeExamples(t *testing.T) {
	// register to register move between legacy registers
	code := mustEncode(t, Inst2(MOV, RAX, RBX))
	if len(code) != 3 || code[0] != 0x48 || code[2]>>6 != 3 {
		t.Fatalf("mov rax, rbx = %#x", code)
	}

	// extended base with a displacement outside the 8-bit range
	code = mustEncode(t, Inst2(MOV, Mem{Base: R13, Disp: 300}, RBX))
	if code[0] != 0x49 || code[2]>>6 != 2 || code[2]&7 != 5 || len(code) != 7 {
		t.Fatalf("mov [r13+300], rbx = %#x", code)
	}

	// destination-precision immediate against a 2-byte memory destination
	code = mustEncode(t, Inst2(CMP, Mem{Base: RAX, Width: 2}, Imm8(1)))
	if !bytes.Equal(code[len(code)-4:], []byte{1, 0, 0, 0}) || len(code) != 7 {
		t.Fatalf("cmp word ptr [rax], 1 = %#x", code)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	inst := Inst2(ADD, PtrIndex(R12, R13, 4, -300), R14)
	a, b := mustEncode(t, inst), mustEncode(t, inst)
	if !bytes.Equal(a, b) {
		t.Fatalf("%#x != %#x", a, b)
	}
}

func TestEncodeDoesNotModifyInstruction(t *testing.T) {
	inst := Inst2(MOV, RAX, Imm8(7))
	before := inst
	mustEncode(t, inst)
	if inst != before || inst.Arg(0) != RAX {
		t.Fatalf("instruction was modified: %s", inst)
	}
}

func TestNormalizationTransparency(t *testing.T) {
	for _, v := range []int64{0, 1, 0x7f, 0x80, 0x12345678, 0x7fffffff} {
		wide := mustEncode(t, Inst2(MOV, R9, Imm32(v)))
		narrow := mustEncode(t, Inst2(MOV, R9D, Imm32(v)))
		if !bytes.Equal(wide, narrow) {
			t.Fatalf("mov r9, %#x = %#x != mov r9d = %#x", v, wide, narrow)
		}
	}
	wide := mustEncode(t, Inst2(MOV, RCX, Imm8(5)))
	narrow := mustEncode(t, Inst2(MOV, ECX, Imm32(5)))
	if !bytes.Equal(wide, narrow) {
		t.Fatalf("mov rcx, imm8 = %#x != %#x", wide, narrow)
	}
	// negative immediates keep the 64-bit destination
	if code := mustEncode(t, Inst2(MOV, RCX, Imm32(-2))); code[0] != 0x48 {
		t.Fatalf("mov rcx, -2 = %#x", code)
	}
}

func TestRexNecessity(t *testing.T) {
	cases := []struct {
		inst Instruction
		rex  bool
	}{
		{Inst2(MOV, EAX, EBX), false},
		{Inst2(MOV, AX, BX), false},
		{Inst2(MOV, AL, BL), false},
		{Inst2(MOV, AL, Mem{Base: RBX}), false},
		{Inst2(MOV, RAX, RBX), true},
		{Inst2(MOV, EAX, R8D), true},
		{Inst2(MOV, R8B, AL), true},
		{Inst2(MOV, AL, SPL), true},
		{Inst2(MOV, BPL, Imm8(1)), true},
		{Inst2(MOV, EAX, Mem{Base: R9}), true},
		{Inst2(MOV, EAX, Mem{Base: RAX, Index: R10}), true},
		{Inst1(SETE, DIL), true},
		{Inst1(SETE, BL), false},
		{Inst1(INC, EAX), false},
		{Inst1(JMP, RAX), false},
		{Inst1(PUSH, Mem{Base: RAX, Width: 8}), false},
		{Inst1(CALL, Mem{Base: RBX, Width: 8}), false},
	}
	for _, c := range cases {
		code := mustEncode(t, c.inst)
		i := 0
		if code[0] == 0x66 {
			i++
		}
		hasRex := code[i]&0xf0 == 0x40
		if hasRex != c.rex {
			t.Fatalf("%s = %#x, rex = %v", c.inst, code, hasRex)
		}
	}
}

func TestOperandSizeOverride(t *testing.T) {
	for _, inst := range []Instruction{
		Inst2(MOV, AX, BX),
		Inst2(ADD, R10W, Imm8(1)),
		Inst2(MOV, Mem{Base: RAX, Width: 2}, CX),
		Inst2(XCHG, DX, Mem{Base: RSI}),
		Inst1(PUSH, AX),
	} {
		if code := mustEncode(t, inst); code[0] != 0x66 {
			t.Fatalf("%s = %#x", inst, code)
		}
	}
	for _, inst := range []Instruction{
		Inst2(MOV, EAX, EBX),
		Inst2(MOV, RAX, RBX),
		Inst2(MOV, AL, BL),
	} {
		if code := mustEncode(t, inst); bytes.IndexByte(code, 0x66) == 0 {
			t.Fatalf("%s = %#x", inst, code)
		}
	}
}

func TestModSelection(t *testing.T) {
	cases := []struct {
		mem Mem
		mod byte
		len int
	}{
		{Mem{Base: RBX, Shape: AddrIndirect}, 0, 2},
		{Mem{Base: RBX, Disp: 0, Shape: AddrDisp}, 1, 3},
		{Mem{Base: RBX, Disp: 127, Shape: AddrDisp}, 1, 3},
		{Mem{Base: RBX, Disp: -128, Shape: AddrDisp}, 1, 3},
		{Mem{Base: RBX, Disp: 128, Shape: AddrDisp}, 2, 6},
		{Mem{Base: RBX, Disp: -129, Shape: AddrDisp}, 2, 6},
		{PtrIndex(RBX, RCX, 1, 0), 0, 3},
		{PtrIndex(RBX, RCX, 1, -1), 1, 4},
		{PtrIndex(RBX, RCX, 1, 1000), 2, 7},
	}
	for _, c := range cases {
		code := mustEncode(t, Inst2(MOV, EAX, c.mem))
		if code[1]>>6 != c.mod || len(code) != c.len {
			t.Fatalf("mov eax, %s = %#x", c.mem, code)
		}
		if c.mem.Shape == AddrIndexed && code[1]&7 != 4 {
			t.Fatalf("mov eax, %s = %#x: missing SIB escape", c.mem, code)
		}
	}
}

func TestSIB(t *testing.T) {
	code := mustEncode(t, Inst2(LEA, RAX, PtrIndex(RBX, RSI, 8, 0)))
	// 48 8d 04 f3
	if fmt.Sprintf("%#x", code) != "0x488d04f3" {
		t.Fatalf("lea rax, [rbx+rsi*8] = %#x", code)
	}
	code = mustEncode(t, Inst2(LEA, RAX, PtrIndex(R13, R14, 4, 8)))
	// 4b 8d 44 b5 08
	if fmt.Sprintf("%#x", code) != "0x4b8d44b508" {
		t.Fatalf("lea rax, [r13+r14*4+8] = %#x", code)
	}
}

func TestImmediateTruncation(t *testing.T) {
	cases := []struct {
		inst Instruction
		imm  int
	}{
		{Inst2(MOV, Mem{Base: RAX, Width: 1}, Imm32(0x12345678)), 1},
		{Inst2(MOV, Mem{Base: RAX, Width: 8}, Imm8(1)), 4},
		{Inst2(MOV, EBX, Imm8(1)), 4},
		{Inst2(MOV, BX, Imm32(1)), 2},
		{Inst2(MOV, BL, Imm32(1)), 1},
		{Inst2(MOV, RBX, Imm64(-1)), 8},
		{Inst2(CMP, RBX, Imm8(1)), 4},
		{Inst2(ADD, RBX, Imm8(1)), 1},
		{Inst2(ADD, RBX, Imm32(1)), 4},
		{Inst2(SHL, Mem{Base: RAX, Width: 4}, Imm8(3)), 1},
		{Inst1(PUSH, Imm32(0x1000)), 4},
	}
	for _, c := range cases {
		var m InstMatcher
		norm := normalize(c.inst)
		if err := m.Match(norm); err != nil {
			t.Fatalf("%s: %v", c.inst, err)
		}
		var b buffer
		emitImm(&b, norm, m.Opcode(), extractArgs(norm, m.Opcode()))
		if b.Len() != c.imm {
			t.Fatalf("%s: %d immediate bytes, expected %d", c.inst, b.Len(), c.imm)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	cases := []struct {
		inst Instruction
		err  error
	}{
		{Inst2(MOV, Mem{Base: RAX}, Imm8(1)), ErrAmbiguousSize},
		{Inst2(MOV, Mem{Base: RAX}, Mem{Base: RBX}), ErrAmbiguousSize},
		{Inst2(MOV, Imm8(1), RAX), ErrImmediateDestination},
		{Inst2(MOV, RAX, EBX), ErrSizeMismatch},
		{Inst2(MOV, Mem{Base: RAX, Width: 4}, RBX), ErrSizeMismatch},
		{Inst2(MOV, AH, R8B), ErrHighByteRex},
		{Inst2(MOV, AH, SIL), ErrHighByteRex},
		{Inst2(MOV, AH, Mem{Base: R9}), ErrHighByteRex},
		{Inst2(LEA, RAX, RBX), ErrNoMatch},
		{Inst2(MOV, Mem{Base: RAX, Width: 8}, Mem{Base: RBX, Width: 8}), ErrNoMatch},
		{Inst2(ADD, AX, Imm32(1)), ErrNoMatch},
		{Inst0(Inst(0)), ErrNoMatch},
	}
	for _, c := range cases {
		code, err := Encode(c.inst)
		if !errors.Is(err, c.err) {
			t.Fatalf("%s: err = %v, expected %v", c.inst, err, c.err)
		}
		if code != nil {
			t.Fatalf("%s: code = %#x", c.inst, code)
		}
	}
}

func TestStackPointerBase(t *testing.T) {
	// a shape-less memory argument on RSP/R12 goes through a SIB byte like Ptr
	cases := []struct {
		mem  Mem
		code string
	}{
		{Mem{Base: RSP}, "0x488b0424"},
		{Mem{Base: RSP, Disp: 8}, "0x488b442408"},
		{Mem{Base: R12}, "0x498b0424"},
		{Mem{Base: R12, Disp: 300}, "0x498b84242c010000"},
	}
	for _, c := range cases {
		code := mustEncode(t, Inst2(MOV, RAX, c.mem))
		if fmt.Sprintf("%#x", code) != c.code {
			t.Fatalf("mov rax, %s = %#x, expected %s", c.mem, code, c.code)
		}
		ptr := mustEncode(t, Inst2(MOV, RAX, Ptr(c.mem.Base, c.mem.Disp)))
		if !bytes.Equal(code, ptr) {
			t.Fatalf("mov rax, %s = %#x != %#x", c.mem, code, ptr)
		}
	}
}

func TestEncodeInvariants(t *testing.T) {
	panics := map[string]Instruction{
		"rsp base without SIB":       Inst2(MOV, RAX, Mem{Base: RSP, Shape: AddrIndirect}),
		"r12 base with displacement": Inst2(MOV, RAX, Mem{Base: R12, Disp: 8, Shape: AddrDisp}),
		"rbp base without disp":      Inst2(MOV, RAX, Mem{Base: RBP, Shape: AddrIndirect}),
		"indexed without index":      Inst2(MOV, RAX, Mem{Base: RBX, Shape: AddrIndexed}),
		"indexed rbp without disp":   Inst2(MOV, RAX, Mem{Base: RBP, Index: RCX}),
		"32-bit base":                Inst2(MOV, RAX, Mem{Base: EBX}),
		"no base":                    Inst2(MOV, RAX, Mem{Index: RBX}),
		"bad scale":                  Inst2(MOV, RAX, Mem{Base: RBX, Index: RCX, Scale: 3}),
		"relative destination":       Inst2(MOV, Rel32(8), RAX),
		"relative source":            Inst2(MOV, RAX, Rel32(8)),
		"lone relative":              Inst1(JMP, Rel32(8)),
		"segment register":           Inst2(MOV, AX, FS),
	}
	for name, inst := range panics {
		inst := inst
		expectPanic(t, name, func() { Encode(inst) })
	}
}

type fixedTable struct{ op Opcode }

func (t fixedTable) Lookup(Instruction) (Opcode, error) { return t.op, nil }

func TestEncoderWithTable(t *testing.T) {
	// movzx eax, byte ptr [rdi] through a caller-supplied table
	enc := NewEncoder(fixedTable{Opcode{Value: 0x0fb6, Kind: ModRMReg}})
	code, err := enc.Encode(Inst2(MOV, EAX, Mem{Base: RDI}))
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprintf("%#x", code) != "0x0fb607" {
		t.Fatalf("code = %#x", code)
	}

	enc = NewEncoder(fixedTable{Opcode{Value: 0x50, Kind: OpcodeReg}})
	expectPanic(t, "opcode+register with memory", func() { enc.Encode(Inst1(PUSH, Mem{Base: RAX, Width: 8})) })

	enc = NewEncoder(fixedTable{Opcode{Value: 0xc3, Kind: ModRMNone}})
	expectPanic(t, "no ModRM with a register", func() { enc.Encode(Inst1(RET, RAX)) })
}
