package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	astamboly "github.com/mahanfarzaneh2000/Astamboly"
	"github.com/mahanfarzaneh2000/Astamboly/lookup"
)

func newMnemonicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonics [mnemonic...]",
		Short: "Print the opcode table",
		Long: `Print the encodings of the standard opcode table, in the order they are matched.

Argument patterns use r for registers, m for memory, v for either and i for immediates,
followed by the size: b, w, d, q, * for any size or _ for memory without a size.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			insts := astamboly.Mnemonics()
			if len(args) > 0 {
				insts = insts[:0]
				for _, name := range args {
					inst, ok := lookup.Inst(name)
					if !ok {
						return fmt.Errorf("unknown mnemonic %q", name)
					}
					insts = append(insts, inst)
				}
			}
			printMnemonics(cmd.OutOrStdout(), insts)
			return nil
		},
	}
}

func printMnemonics(w io.Writer, insts []astamboly.Inst) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Mnemonic", "Arguments", "Opcode", "Encoding", "Flags"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, inst := range insts {
		for _, e := range astamboly.Encodings(inst) {
			encoding := e.Opcode.Kind.String()
			if e.Opcode.Kind == astamboly.ModRMExt {
				encoding = fmt.Sprintf("/%d", e.Opcode.Ext)
			}
			table.Append([]string{inst.Name(), e.Pattern, opcodeString(e.Opcode.Value), encoding, strings.Join(e.Flags, " ")})
		}
	}
	table.Render()
}

func opcodeString(v uint16) string {
	if v > 0xff {
		return fmt.Sprintf("%04x", v)
	}
	return fmt.Sprintf("%02x", v)
}
