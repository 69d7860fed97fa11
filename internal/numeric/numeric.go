// Package numeric implements validation and conversion of numeric strings.
package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// nonZeroDigits are the digits of which at least one must be present in a
	// string for it to be considered for conversion.
	nonZeroDigits = "123456789"

	// spaceChars are the characters skipped before the number.
	spaceChars = " \t\n\v\f\r"
)

// Parse converts a string to an int. The string is first checked to contain at
// least one digit between '1' and '9', failing with [ErrInvalidFormat] if not.
// This rejects empty strings and strings consisting only of zeros, but does not
// validate the position of signs or other characters.
//
// The string is then converted from its start the way C's strtol does in base
// 10: leading whitespace is skipped, an optional sign is taken and the longest
// following run of decimal digits makes up the number. Anything after that run
// is ignored, so "12abc" is 12 and "3.5" is 3. Without any digits at that
// position the result is 0. A value exceeding the range of an int fails with
// [ErrOutOfRange].
func Parse(text string) (int, error) {
	if !strings.ContainsAny(text, nonZeroDigits) {
		return 0, fmt.Errorf("%w: %q has no non-zero digit", ErrInvalidFormat, text)
	}

	number := leadingNumber(text)
	if number == "" {
		return 0, nil
	}

	num, err := strconv.ParseInt(number, 10, strconv.IntSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}

		return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return int(num), nil
}

// leadingNumber returns the optionally signed run of decimal digits at the
// start of text (after whitespace), or "" if there are no digits.
func leadingNumber(text string) string {
	rest := strings.TrimLeft(text, spaceChars)

	sign := ""
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		sign, rest = rest[:1], rest[1:]
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}

	if end == 0 {
		return ""
	}

	return sign + rest[:end]
}
