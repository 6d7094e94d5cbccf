package disasm

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"reflect"
	"unsafe"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/arch/x86/x86asm"
)

// maximum length of an x86-64 instruction
const maxInstLen = 15

// A Line is one decoded instruction.
type Line struct {
	PC    int
	Bytes []byte
	Inst  x86asm.Inst
	Text  string // Intel syntax
}

// Decode every instruction in code. Decoding stops at the first byte sequence x86asm does not
// recognize; the lines decoded so far are returned together with the error.
func Code(code []byte) ([]Line, error) {
	var lines []Line
	for pc := 0; pc < len(code); {
		inst, err := x86asm.Decode(code[pc:], 64)
		if err != nil {
			return lines, fmt.Errorf("at pc %#x: %w", pc, err)
		}
		lines = append(lines, Line{
			PC:    pc,
			Bytes: code[pc : pc+inst.Len],
			Inst:  inst,
			Text:  x86asm.IntelSyntax(inst, uint64(pc), nil),
		})
		pc += inst.Len
	}
	return lines, nil
}

// Write a listing of lines to w, one instruction per row with its offset and encoded bytes.
func Fprint(w io.Writer, lines []Line) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"PC", "Bytes", "Instruction"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	for _, l := range lines {
		table.Append([]string{fmt.Sprintf("%04x", l.PC), hex.EncodeToString(l.Bytes), l.Text})
	}
	table.Render()
}

// Disassemble instructions from funcValue until while returns false. A maximum of 4096 bytes
// may be decoded. This function is entirely unsafe.
//
// funcValue must be a non-nil Go function-value.
//
// Some instructions supported by the astamboly encoder are not supported by the
// instruction-decoder in the x86asm package.
func Func(funcValue interface{}, while func(x86asm.Inst) bool) error {
	// See "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(funcValue)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Errorf("Argument for Func must be a non-nil function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&funcValue))
	code := (*[4096 + maxInstLen]byte)(unsafe.Pointer(*header.addr))
	n := 0
	for n < 4096 {
		inst, err := x86asm.Decode(code[n:n+maxInstLen], 64)
		if err != nil {
			return err
		}
		if !while(inst) {
			return nil
		}
		if code[n] == 0xc3 { // find RET + padding (end of function)
			if n&15 != 0 {
				pad := 16 - (n & 15) // functions are typically aligned to a 16-byte boundary

				if bytes.Equal(code[n+1:n+1+pad], pad00[:pad]) || bytes.Equal(code[n+1:n+1+pad], padcc[:pad]) {
					return nil
				}
			} else {
				return nil
			}
		}
		n += inst.Len
	}
	return nil
}

// Manually allocated memory is typically zeroed
var pad00 = [16]byte{}

// The Go compiler pads functions with 0xCC bytes to a 16-byte alignment boundary
var padcc = [...]byte{0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc}
