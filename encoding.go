// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

// Unquote decodes a JSON string literal, including its enclosing quotation
// marks, and returns its contents as a Go string. It reports an error if src
// contains anything other than a single string value and whitespace.
func Unquote(src string) (string, error) {
	p := NewString(src)
	s, err := p.Text()
	if err != nil {
		return "", err
	}
	return s, p.Finish()
}

// UnquoteUTF16 is as [Unquote], but returns the decoded UTF-16 code units
// without combining surrogate pairs.
func UnquoteUTF16(src string) ([]uint16, error) {
	p := NewString(src)
	u, err := p.UTF16()
	if err != nil {
		return nil, err
	}
	return u, p.Finish()
}
