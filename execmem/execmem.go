//go:build linux || darwin || freebsd || netbsd || openbsd

// Package execmem maps encoded machine code into executable memory and lets Go function values
// call it.
package execmem

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	anonPrivate = unix.MAP_ANON | unix.MAP_PRIVATE

	readWrite = unix.PROT_READ | unix.PROT_WRITE
	readExec  = unix.PROT_READ | unix.PROT_EXEC
)

// A Region is an anonymous mapping holding a copy of some code, readable and executable but
// not writable. The mapping is released by Close; functions pointed at it must not be called
// afterwards.
type Region struct {
	mem  []byte
	size int
}

// Copy code into a new executable mapping. The mapping is rounded up to a whole number of pages;
// the remainder is zeroed.
func Map(code []byte) (*Region, error) {
	if len(code) == 0 {
		return nil, errors.New("no code to map")
	}
	page := os.Getpagesize()
	length := (len(code) + page - 1) / page * page

	mem, err := unix.Mmap(-1, 0, length, readWrite, anonPrivate)
	if err != nil {
		return nil, fmt.Errorf("sys/unix.Mmap failed: %w", err)
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, readExec); err != nil {
		unix.Munmap(mem)
		return nil, fmt.Errorf("sys/unix.Mprotect failed: %w", err)
	}
	return &Region{mem: mem, size: len(code)}, nil
}

// Get the mapped code. The returned slice must not be written to.
func (r *Region) Code() []byte { return r.mem[:r.size] }

// Point the function value at dstAddr to the start of the mapped code.
func (r *Region) Bind(dstAddr interface{}) error {
	if r.mem == nil {
		return errors.New("region is closed")
	}
	return SetFunctionCode(dstAddr, r.mem)
}

// Release the mapping.
func (r *Region) Close() error {
	if r.mem == nil {
		return nil
	}
	err := unix.Munmap(r.mem)
	r.mem = nil
	if err != nil {
		return fmt.Errorf("sys/unix.Munmap failed: %w", err)
	}
	return nil
}

// Set the executable code for dstAddr. This function is entirely unsafe.
//
// dstAddr must be a pointer to a function value.
// executable must be marked with PROT_EXEC privileges through a MPROTECT system-call; Map does this.
func SetFunctionCode(dstAddr interface{}, executable []byte) error {
	// See "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(dstAddr)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || !v.Elem().CanSet() || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("Destination for SetFunctionCode must be a pointer to a function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&dstAddr))
	*header.addr = &executable
	return nil
}
