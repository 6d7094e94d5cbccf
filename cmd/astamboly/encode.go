package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	astamboly "github.com/mahanfarzaneh2000/Astamboly"
	"github.com/mahanfarzaneh2000/Astamboly/disasm"
	"github.com/mahanfarzaneh2000/Astamboly/log"
	"github.com/mahanfarzaneh2000/Astamboly/program"
)

const (
	formatHex     = "hex"
	formatListing = "listing"
	formatRaw     = "raw"
)

type encodeParams struct {
	format *enumFlag
	output string
}

func newEncodeCommand() *cobra.Command {
	params := encodeParams{format: newEnumFlag(formatHex, []string{formatHex, formatListing, formatRaw})}

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a program",
		Long: `Encode the instructions of a YAML or JSON program into x86-64 machine code.

The program is read from file, or from stdin when file is "-" or missing. Each item names a
mnemonic and up to two arguments:

	- op: mov
	  args: [{reg: rax}, {mem: {base: rdi, index: rcx, scale: 8, disp: 16}}]
	- op: ret`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return encode(cmd, path, params)
		},
	}
	cmd.Flags().VarP(params.format, "format", "f", "set output format: "+params.format.Type())
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "write output to a file instead of stdout")
	return cmd
}

func encode(cmd *cobra.Command, path string, params encodeParams) error {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	log.WithField("file", path).Debug("decoding program")
	p, err := program.Decode(in)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	asm := astamboly.NewAssembler(nil)
	if err := p.Assemble(asm); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	code := asm.Code()
	log.WithFields(log.Fields{"items": len(p.Items), "bytes": len(code)}).Debug("encoded program")

	out := cmd.OutOrStdout()
	if params.output != "" {
		f, err := os.Create(params.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch params.format.String() {
	case formatHex:
		_, err = fmt.Fprintln(out, hex.EncodeToString(code))
	case formatRaw:
		_, err = out.Write(code)
	case formatListing:
		var lines []disasm.Line
		if lines, err = disasm.Code(code); err == nil {
			disasm.Fprint(out, lines)
		}
	}
	return err
}
