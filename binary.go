package minnow

// This file contains the binary encoding of run results, used by anything
// that needs to persist a Result, such as the server's run store.

import (
	"fmt"

	"github.com/dekarrin/rezi"
)

// MarshalBinary converts d into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (d Diagnostic) MarshalBinary() ([]byte, error) {
	var enc []byte

	enc = append(enc, rezi.EncInt(int(d.Category))...)
	enc = append(enc, rezi.EncInt(d.Line)...)
	enc = append(enc, rezi.EncInt(d.Col)...)
	enc = append(enc, rezi.EncString(d.Message)...)

	return enc, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into d.
// All of d's fields are replaced by the fields decoded from data.
func (d *Diagnostic) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	var cat int
	cat, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}
	data = data[n:]
	d.Category = Category(cat)

	d.Line, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	data = data[n:]

	d.Col, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	data = data[n:]

	d.Message, _, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("message: %w", err)
	}

	return nil
}

// MarshalBinary converts r into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (r Result) MarshalBinary() ([]byte, error) {
	var enc []byte

	enc = append(enc, rezi.EncInt(len(r.Output))...)
	for i := range r.Output {
		enc = append(enc, rezi.EncString(r.Output[i])...)
	}

	enc = append(enc, rezi.EncInt(len(r.Diagnostics))...)
	for i := range r.Diagnostics {
		enc = append(enc, rezi.EncBinary(r.Diagnostics[i])...)
	}

	return enc, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into r.
// All of r's fields are replaced by the fields decoded from data.
func (r *Result) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	var outputCount int
	outputCount, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("output count: %w", err)
	}
	data = data[n:]

	r.Output = nil
	for i := 0; i < outputCount; i++ {
		var line string
		line, n, err = rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("output[%d]: %w", i, err)
		}
		data = data[n:]
		r.Output = append(r.Output, line)
	}

	var diagCount int
	diagCount, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("diagnostic count: %w", err)
	}
	data = data[n:]

	r.Diagnostics = nil
	for i := 0; i < diagCount; i++ {
		var d Diagnostic
		n, err = rezi.DecBinary(data, &d)
		if err != nil {
			return fmt.Errorf("diagnostic[%d]: %w", i, err)
		}
		data = data[n:]
		r.Diagnostics = append(r.Diagnostics, d)
	}

	return nil
}
