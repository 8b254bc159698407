package gpc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Alphabet is the set of symbols a grid point code is written with, in
// digit order. It leaves out vowels and letters easily mistaken for digits.
const Alphabet = "0123456789CDFGHJKLMNPRTVWXY"

const codeBase = uint64(len(Alphabet)) // 27

// CodeLength is the number of symbols in an unformatted grid point code.
const CodeLength = 11

// pointOffset is added to every point number before it is written out.
// It equals 27^10 - 10^10, so the smallest point number is written as
// "10000000000" and every code is exactly CodeLength symbols long.
const pointOffset uint64 = 205881132094649

const pointScale uint64 = 10000000000 // 10^(2*fractionDigits)

const minPoint = pointScale
const maxPoint = maxCombination*pointScale + pointScale - 1

var unformatReplacer = strings.NewReplacer(" ", "", "-", "", "#", "")

// encodePoint builds the offset point number from the combination number and
// both axes' digits. Digits are interleaved longitude first, most
// significant first.
func encodePoint(combination int, lat, lng axisParts) uint64 {
	point := uint64(combination) * pointScale
	power := pointScale / 10
	for i := 0; i < fractionDigits; i++ {
		point += uint64(lng.digits[i]) * power
		power /= 10
		point += uint64(lat.digits[i]) * power
		power /= 10
	}
	return point + pointOffset
}

// decodePoint removes the offset from value and splits the point number back
// into the combination number and the digits of each axis.
func decodePoint(value uint64) (combination int, lat, lng axisParts, err error) {
	if value < pointOffset+minPoint || value > pointOffset+maxPoint {
		err = fmt.Errorf("%w: %d", ErrInvalidCodeValue, value)
		return
	}
	point := value - pointOffset
	combination = int(point / pointScale)
	fractional := point % pointScale
	for i := fractionDigits - 1; i >= 0; i-- {
		lat.digits[i] = int(fractional % 10)
		fractional /= 10
		lng.digits[i] = int(fractional % 10)
		fractional /= 10
	}
	return
}

// toCode writes value in base 27, most significant symbol first.
func toCode(value uint64) string {
	var buf [CodeLength]byte
	for i := CodeLength - 1; i >= 0; i-- {
		buf[i] = Alphabet[value%codeBase]
		value /= codeBase
	}
	return string(buf[:])
}

// fromCode parses an unformatted, upper case code.
func fromCode(code string) (uint64, error) {
	var value uint64
	for i := 0; i < len(code); i++ {
		digit := strings.IndexByte(Alphabet, code[i])
		if digit < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCodeCharacter, code[i])
		}
		value = value*codeBase + uint64(digit)
	}
	return value, nil
}

// checkCode validates an unformatted code's length and symbols.
func checkCode(code string) error {
	if n := utf8.RuneCountInString(code); n != CodeLength {
		return fmt.Errorf("%w: got %d", ErrInvalidCodeLength, n)
	}
	for _, r := range code {
		if r >= utf8.RuneSelf || strings.IndexByte(Alphabet, byte(r)) < 0 {
			return fmt.Errorf("%w: %q", ErrInvalidCodeCharacter, r)
		}
	}
	return nil
}

// Format returns the printable form of an unformatted code: a leading '#'
// and a '-' after the 4th and 8th symbol, e.g. "#1000-0000-000".
func Format(code string) string {
	buf := bytes.Buffer{}
	buf.Grow(len(code) + 3)
	buf.WriteByte('#')
	for i := 0; i < len(code); i++ {
		if i == 4 || i == 8 {
			buf.WriteByte('-')
		}
		buf.WriteByte(code[i])
	}
	return buf.String()
}

// Unformat removes spaces, hyphens and '#' from code and upper cases it.
// It does not validate the result.
func Unformat(code string) string {
	return strings.ToUpper(strings.TrimSpace(unformatReplacer.Replace(code)))
}
