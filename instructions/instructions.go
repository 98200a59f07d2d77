// Package instructions scans corrupted memory for multiplication instructions.
//
// Only the exact form mul(X,Y), with X and Y runs of decimal digits, is a
// multiplication. do() and don't() switch later multiplications on and off.
package instructions

import (
	"strconv"
	"strings"
)

// Kind identifies an instruction found in the input.
type Kind int

const (
	Mul Kind = iota
	Do
	Dont
)

func (k Kind) String() string {
	switch k {
	case Mul:
		return "mul"
	case Do:
		return "do"
	case Dont:
		return "don't"
	default:
		return "unknown"
	}
}

// Instruction is one well-formed instruction and its byte offset in the input.
type Instruction struct {
	Kind   Kind
	Left   int
	Right  int
	Offset int
}

// Product returns Left*Right for a Mul and 0 otherwise.
func (in Instruction) Product() int {
	if in.Kind != Mul {
		return 0
	}
	return in.Left * in.Right
}

const (
	mulPrefix = "mul("
	doToken   = "do()"
	dontToken = "don't()"
)

// Scan returns the well-formed instructions in data, in input order.
func Scan(data string) []Instruction {
	var found []Instruction

	for i := 0; i < len(data); {
		rest := data[i:]
		switch {
		case strings.HasPrefix(rest, mulPrefix):
			if left, right, ok := parseMulArgs(rest[len(mulPrefix):]); ok {
				found = append(found, Instruction{Kind: Mul, Left: left, Right: right, Offset: i})
			}
			// operands never start another instruction
			i += len(mulPrefix)
		case strings.HasPrefix(rest, doToken):
			found = append(found, Instruction{Kind: Do, Offset: i})
			i += len(doToken)
		case strings.HasPrefix(rest, dontToken):
			found = append(found, Instruction{Kind: Dont, Offset: i})
			i += len(dontToken)
		default:
			i++
		}
	}

	return found
}

// SumMuls returns the sum of all multiplication results in data.
func SumMuls(data string) int {
	sum := 0
	for _, in := range Scan(data) {
		sum += in.Product()
	}
	return sum
}

// SumEnabledMuls returns the sum of the multiplications that are enabled.
// Multiplications start enabled; don't() disables and do() enables them.
func SumEnabledMuls(data string) int {
	sum := 0
	enabled := true
	for _, in := range Scan(data) {
		switch in.Kind {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled {
				sum += in.Product()
			}
		}
	}
	return sum
}

// parseMulArgs parses "X,Y)" at the start of s.
func parseMulArgs(s string) (left, right int, ok bool) {
	left, s, ok = parseArg(s, ',')
	if !ok {
		return 0, 0, false
	}
	right, _, ok = parseArg(s, ')')
	if !ok {
		return 0, 0, false
	}
	return left, right, true
}

// parseArg parses the digits at the start of s, which must be followed by
// terminator. An empty or out of range operand parses as 0.
func parseArg(s string, terminator byte) (int, string, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == len(s) || s[end] != terminator {
		return 0, s, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		n = 0
	}
	return n, s[end+1:], true
}
