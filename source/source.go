// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package source constructs rune readers suitable for use with a
// jpull.Parser from input in various encodings.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tailscale/hujson"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto returns a reader that decodes r as UTF-8, unless r begins with a
// UTF-8 or UTF-16 byte order mark. Any byte order mark is removed.
func Auto(r io.Reader) io.RuneReader {
	return decode(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// UTF16 returns a reader that decodes r as UTF-16 with the given byte order.
// A byte order mark at the start of r, if present, overrides the given order
// and is removed.
func UTF16(r io.Reader, bigEndian bool) io.RuneReader {
	order := unicode.LittleEndian
	if bigEndian {
		order = unicode.BigEndian
	}
	return decode(r, unicode.UTF16(order, unicode.UseBOM).NewDecoder())
}

// Encoding returns a reader that decodes r according to the named encoding.
// The valid names are "auto", "utf8", "utf16le", and "utf16be".
func Encoding(r io.Reader, name string) (io.RuneReader, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Auto(r), nil
	case "utf8", "utf-8":
		return decode(r, unicode.UTF8.NewDecoder()), nil
	case "utf16le", "utf-16le":
		return UTF16(r, false), nil
	case "utf16be", "utf-16be":
		return UTF16(r, true), nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

// Standardize reads all of rr, which may contain JSON with comments and
// trailing commas (JWCC), and returns a reader for the equivalent standard
// JSON. Comments and trailing commas are replaced by spaces, so that line
// numbers reported while parsing match the original input.
func Standardize(rr io.RuneReader) (io.RuneReader, error) {
	var buf bytes.Buffer
	for {
		ch, _, err := rr.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		buf.WriteRune(ch)
	}
	std, err := hujson.Standardize(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(std), nil
}

func decode(r io.Reader, t transform.Transformer) io.RuneReader {
	return bufio.NewReader(transform.NewReader(r, t))
}
