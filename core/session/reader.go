/*
 * === This file is part of Lander ===
 *
 * Copyright 2026 the Lander authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package session

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// DefaultMaxTokenLength bounds a single event token, in characters.
const DefaultMaxTokenLength = 99

// EventSource yields the operator's next event name. available holds the
// events legal in the current state. io.EOF means the operator is done.
type EventSource interface {
	NextEvent(available []string) (string, error)
}

// TokenReader reads whitespace-delimited tokens. Characters past the bound
// are dropped up to the next whitespace, so any amount of input is read
// through a fixed-size token. Token bytes are kept verbatim, and only the
// ASCII blanks separate tokens.
type TokenReader struct {
	r   *bufio.Reader
	max int
}

func NewTokenReader(r io.Reader, maxLength int) *TokenReader {
	if maxLength < 1 {
		maxLength = DefaultMaxTokenLength
	}
	return &TokenReader{
		r:   bufio.NewReader(r),
		max: maxLength,
	}
}

func (t *TokenReader) NextEvent([]string) (string, error) {
	var (
		token    strings.Builder
		length   int
		trailing int
		started  bool
		dropping bool
	)
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				return token.String(), nil
			}
			return "", err
		}
		if isBlank(b) {
			if started {
				return token.String(), nil
			}
			continue
		}
		started = true
		if dropping {
			continue
		}
		// continuation bytes of a multi-byte character are not counted
		if trailing > 0 && b&0xC0 == 0x80 {
			token.WriteByte(b)
			trailing--
			continue
		}
		if length == t.max {
			dropping = true
			continue
		}
		token.WriteByte(b)
		length++
		trailing = continuationBytes(b)
	}
}

func isBlank(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// continuationBytes is the number of bytes a UTF-8 lead byte announces.
func continuationBytes(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 1
	case lead&0xF0 == 0xE0:
		return 2
	case lead&0xF8 == 0xF0:
		return 3
	}
	return 0
}
