package main

import (
	"fmt"
	"strings"
)

// enumFlag implements pflag.Value for a flag with a fixed set of values.
type enumFlag struct {
	value  string
	values []string
}

func newEnumFlag(defaultValue string, values []string) *enumFlag {
	return &enumFlag{value: defaultValue, values: values}
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Type() string { return "{" + strings.Join(f.values, ",") + "}" }

func (f *enumFlag) Set(s string) error {
	for _, v := range f.values {
		if v == s {
			f.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", f.Type())
}
