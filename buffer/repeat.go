package buffer

import "strconv"

// MaxRepeat caps a repeat count so absurd prefixes cannot overflow or spin.
const MaxRepeat = 1_000_000

const maxRepeatDigits = 7

// RepeatBuffer accumulates the decimal digits typed before a motion.
type RepeatBuffer struct {
	digits string
}

// IsDigitKey reports whether key is a single ASCII digit.
func IsDigitKey(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

// Push appends a digit key. It reports false for anything else.
func (r *RepeatBuffer) Push(key string) bool {
	if !IsDigitKey(key) {
		return false
	}
	if len(r.digits) < maxRepeatDigits {
		r.digits += key
	}
	return true
}

// Pending returns the digits typed so far.
func (r RepeatBuffer) Pending() string { return r.digits }

// Count returns the repeat count: 1 when nothing (or only zeros) was typed.
func (r RepeatBuffer) Count() int {
	if r.digits == "" {
		return 1
	}
	n, err := strconv.Atoi(r.digits)
	if err != nil || n <= 0 {
		return 1
	}
	if n > MaxRepeat {
		return MaxRepeat
	}
	return n
}

func (r *RepeatBuffer) Reset() { r.digits = "" }
