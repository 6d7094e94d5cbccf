package disasm

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"

	. "github.com/mahanfarzaneh2000/Astamboly"
	"github.com/mahanfarzaneh2000/Astamboly/execmem"
)

func assemble(t *testing.T) []byte {
	asm := NewAssembler(nil)
	asm.Inst(MOV, RAX, Ptr(RSP, 8))
	asm.Inst(MOV, RBX, Ptr(RSP, 16))
	asm.Inst(ADD, RAX, RBX)
	asm.Inst(MOV, Ptr(RSP, 24), RAX)
	asm.Inst(RET)
	require.NoError(t, asm.Err())
	return asm.Code()
}

func TestCode(t *testing.T) {
	lines, err := Code(assemble(t))
	require.NoError(t, err)

	var texts []string
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	require.Equal(t, []string{
		"mov rax, qword ptr [rsp+0x8]",
		"mov rbx, qword ptr [rsp+0x10]",
		"add rax, rbx",
		"mov qword ptr [rsp+0x18], rax",
		"ret",
	}, texts)

	require.Equal(t, 0, lines[0].PC)
	require.Equal(t, []byte{0x48, 0x8b, 0x44, 0x24, 0x08}, lines[0].Bytes)
	require.Equal(t, 5, lines[1].PC)
	require.Equal(t, x86asm.RET, lines[4].Inst.Op)
}

func TestCodeError(t *testing.T) {
	// mov eax, imm32 cut short after the opcode
	lines, err := Code([]byte{0xc3, 0xb8, 0x01})
	require.Error(t, err)
	require.Len(t, lines, 1)
	require.Contains(t, err.Error(), "at pc 0x1")
}

func TestFprint(t *testing.T) {
	lines, err := Code(assemble(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	Fprint(&buf, lines)
	out := buf.String()
	require.Contains(t, out, "488b442408")
	require.Contains(t, out, "mov qword ptr [rsp+0x18], rax")
	require.Equal(t, len(lines)+1, strings.Count(strings.TrimSpace(out), "\n")+1)
}

func TestFunc(t *testing.T) {
	if runtime.GOARCH != "amd64" || runtime.GOOS != "linux" {
		t.Skipf("executing x86-64 code on %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	r, err := execmem.Map(assemble(t))
	require.NoError(t, err)
	defer r.Close()

	// never called; the stack layout above is not Go's
	f := (func(a, b int) int)(nil)
	require.NoError(t, r.Bind(&f))

	var insts []x86asm.Inst
	takeWhile := func(inst x86asm.Inst) bool {
		insts = append(insts, inst)
		return true // RET + padding should be automatically detected
	}
	require.NoError(t, Func(f, takeWhile))
	require.Len(t, insts, 5)
	require.Equal(t, "mov qword ptr [rsp+0x18], rax", x86asm.IntelSyntax(insts[3], 0, nil))

	insts = insts[:0]
	require.NoError(t, Func(f, func(inst x86asm.Inst) bool {
		insts = append(insts, inst)
		return inst.Op != x86asm.ADD
	}))
	require.Len(t, insts, 3)

	require.Error(t, Func(nil, takeWhile))
	require.Error(t, Func(42, takeWhile))
}
