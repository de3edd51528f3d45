// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson/fastfloat"
)

// NumberText consumes a number and returns its text as written, except that
// an uppercase exponent marker "E" is replaced by "e". The result is suitable
// for arbitrary-precision decoding.
func (p *Parser) NumberText() (string, error) {
	if err := p.scanNumber(); err != nil {
		return "", err
	}
	return string(p.buf), nil
}

// Int64 consumes a number and returns its value as an int64. The number must
// have an integral value, but it may be written with a fraction or an
// exponent, for example 1.0 or 25e-1.
func (p *Parser) Int64() (int64, error) {
	if err := p.scanNumber(); err != nil {
		return 0, err
	}
	text := string(p.buf)
	if v, err := fastfloat.ParseInt64(text); err == nil {
		return v, nil
	}
	z, err := p.integral(text)
	if err != nil {
		return 0, err
	} else if !z.IsInt64() {
		return 0, p.fail(NumberOutOfRange, text, "overflows int64")
	}
	return z.Int64(), nil
}

// Uint64 consumes a number and returns its value as a uint64. The number
// must have a non-negative integral value; see [Parser.Int64].
func (p *Parser) Uint64() (uint64, error) {
	if err := p.scanNumber(); err != nil {
		return 0, err
	}
	text := string(p.buf)
	if v, err := fastfloat.ParseUint64(text); err == nil {
		return v, nil
	}
	z, err := p.integral(text)
	if err != nil {
		return 0, err
	} else if !z.IsUint64() {
		return 0, p.fail(NumberOutOfRange, text, "overflows uint64")
	}
	return z.Uint64(), nil
}

// Float64 consumes a number and returns the nearest float64 value. It
// reports an error if the value overflows the range of float64.
func (p *Parser) Float64() (float64, error) {
	if err := p.scanNumber(); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(string(p.buf), 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, p.fail(NumberOutOfRange, string(p.buf), "overflows float64")
	} else if err != nil {
		return 0, p.fail(ExpectedNumber, string(p.buf), err.Error())
	}
	return v, nil
}

// Decimal consumes a number and returns its exact decimal value.
func (p *Parser) Decimal() (decimal.Decimal, error) {
	if err := p.scanNumber(); err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(string(p.buf))
	if err != nil {
		return decimal.Zero, p.fail(NumberOutOfRange, string(p.buf), err.Error())
	}
	return d, nil
}

// maxIntDigits bounds the number of decimal digits in the integer part of
// any value representable as an int64 or uint64.
const maxIntDigits = 20

// integral returns the value of text as an integer, or reports an error if
// it does not have an integral value. The work done is linear in the length
// of text, whatever its exponent.
func (p *Parser) integral(text string) (*big.Int, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, p.fail(NumberOutOfRange, text, err.Error())
	}
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return new(big.Int), nil
	}

	// The value is coef × 10^exp. Reject huge magnitudes before they are
	// expanded, then drop the fractional digits, which must all be zero.
	digits := new(big.Int).Abs(coef).String()
	ndig, exp := int64(len(digits)), int64(d.Exponent())
	if ndig+exp > maxIntDigits {
		return nil, p.fail(NumberOutOfRange, text, "too large for an integer")
	}
	if exp < 0 {
		if -exp >= ndig || strings.TrimRight(digits[ndig+exp:], "0") != "" {
			return nil, p.fail(NumberOutOfRange, text, "not an integer")
		}
		digits = digits[:ndig+exp]
	} else {
		digits += strings.Repeat("0", int(exp))
	}
	z, _ := new(big.Int).SetString(digits, 10)
	if coef.Sign() < 0 {
		z.Neg(z)
	}
	return z, nil
}
