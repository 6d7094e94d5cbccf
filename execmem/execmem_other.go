//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package execmem

import "errors"

var errUnsupported = errors.New("executable memory is not supported on this platform")

type Region struct{}

func Map(code []byte) (*Region, error)                           { return nil, errUnsupported }
func (r *Region) Code() []byte                                   { return nil }
func (r *Region) Bind(dstAddr interface{}) error                 { return errUnsupported }
func (r *Region) Close() error                                   { return nil }
func SetFunctionCode(dstAddr interface{}, executable []byte) error { return errUnsupported }
