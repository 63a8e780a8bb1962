package ustring

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ustring/codec"
)

type byteRole int

const (
	asciiByte byteRole = iota
	leadByte
	contByte
)

func makeDefaultPalette() map[byteRole]*color.Color {
	palette := map[byteRole]*color.Color{
		asciiByte: color.New(color.FgGreen),
		leadByte:  color.New(color.FgRed),
		contByte:  color.New(color.FgBlue),
	}
	return palette
}

// Dump outputs the encoded byte structure of the string, one character
// per line, to w (for debugging purposes). Single-byte characters, lead
// bytes and continuation bytes are distinguished by color.
func (u *UString[T]) Dump(w io.Writer) {
	palette := makeDefaultPalette()
	var scratch [7]byte
	for i := 0; i < u.n; i++ {
		cp := u.buf[i]
		width := codec.Width(cp)
		codec.Encode(scratch[:], cp, width)
		fmt.Fprintf(w, "%4d  U+%04X ", i, uint64(cp))
		for j := 0; j < width; j++ {
			role := contByte
			if j == 0 {
				role = leadByte
				if width == 1 {
					role = asciiByte
				}
			}
			palette[role].Fprintf(w, " %02x", scratch[j])
		}
		fmt.Fprintln(w)
	}
}

// SDump returns the Dump rendering as a string.
func (u *UString[T]) SDump() string {
	var sb strings.Builder
	u.Dump(&sb)
	return sb.String()
}
