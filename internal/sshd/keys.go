package sshd

import "defterm/internal/widget"

type inputKind int

const (
	inputNone inputKind = iota
	inputRune
	inputKey
	inputBackspace
	inputInterrupt
	inputEOF
	inputRedraw
)

type input struct {
	kind inputKind
	r    rune
	key  widget.Key
}

// decoder turns the rune stream of a terminal into editor input. It knows
// CSI and SS3 cursor keys; other escape sequences are swallowed.
type decoder struct {
	esc    []rune
	lastCR bool
}

func (d *decoder) feed(r rune) input {
	if len(d.esc) > 0 {
		d.esc = append(d.esc, r)
		if len(d.esc) == 2 {
			if r != '[' && r != 'O' {
				d.esc = d.esc[:0]
			}
			return input{}
		}
		// final byte of a CSI/SS3 sequence
		if r >= 0x40 && r <= 0x7e {
			d.esc = d.esc[:0]
			switch r {
			case 'A':
				return input{kind: inputKey, key: widget.KeyUp}
			case 'B':
				return input{kind: inputKey, key: widget.KeyDown}
			}
		}
		return input{}
	}

	cr := d.lastCR
	d.lastCR = false
	switch {
	case r == 0x1b:
		d.esc = append(d.esc[:0], r)
	case r == '\r':
		d.lastCR = true
		return input{kind: inputKey, key: widget.KeyEnter}
	case r == '\n':
		// \r\n is one Enter
		if cr {
			return input{}
		}
		return input{kind: inputKey, key: widget.KeyEnter}
	case r == '\t':
		return input{kind: inputKey, key: widget.KeyTab}
	case r == 0x7f || r == 0x08:
		return input{kind: inputBackspace}
	case r == 0x03:
		return input{kind: inputInterrupt}
	case r == 0x04:
		return input{kind: inputEOF}
	case r == 0x0c:
		return input{kind: inputRedraw}
	case r >= 0x20:
		return input{kind: inputRune, r: r}
	}
	return input{}
}
