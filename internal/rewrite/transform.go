// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"bytes"

	"golang.org/x/text/transform"
)

// Lines returns a transform.Transformer that applies f to each line of its
// input. The newline itself is copied unchanged. A final line without a
// newline is converted once the end of input is reached.
//
// Input of a line is consumed as it arrives and kept until the line is
// complete, so lines may be longer than the buffers of the caller. The
// returned Transformer holds state and must not be used concurrently.
func Lines(f func(string) string) transform.Transformer {
	return &lineTransformer{f: f}
}

type lineTransformer struct {
	f func(string) string

	// line holds the consumed part of an incomplete line.
	line []byte
	// out holds converted text not yet written to dst.
	out []byte
}

func (t *lineTransformer) Reset() {
	t.line = t.line[:0]
	t.out = t.out[:0]
}

// flush converts the buffered line into out.
func (t *lineTransformer) flush(eol bool) {
	t.out = append(t.out[:0], t.f(string(t.line))...)
	if eol {
		t.out = append(t.out, '\n')
	}
	t.line = t.line[:0]
}

func (t *lineTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		if len(t.out) > 0 {
			n := copy(dst[nDst:], t.out)
			nDst += n
			t.out = t.out[n:]
			if len(t.out) > 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		}
		rest := src[nSrc:]
		if len(rest) == 0 {
			if atEOF && len(t.line) > 0 {
				t.flush(false)
				continue
			}
			return nDst, nSrc, nil
		}
		n := bytes.IndexByte(rest, '\n')
		if n < 0 {
			t.line = append(t.line, rest...)
			nSrc = len(src)
			continue
		}
		t.line = append(t.line, rest[:n]...)
		nSrc += n + 1
		t.flush(true)
	}
}
