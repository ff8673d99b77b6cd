// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package toolkit

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// TextApi - line oriented interaction API. Each value is a single line terminated by \n
type TextApi struct {
	w          io.Writer
	lineReader *bufio.Reader
	// buf - allocated buffer for Encode operation
	buf []byte
}

func NewTextApi(r io.Reader, w io.Writer) *TextApi {
	ta := &TextApi{}
	ta.SetReader(r)
	ta.SetWriter(w)
	return ta
}

func (ta *TextApi) SetWriter(w io.Writer) {
	ta.w = w
}

func (ta *TextApi) SetReader(r io.Reader) {
	ta.lineReader = bufio.NewReader(r)
}

// Decode - read one line and strip the trailing terminator (\n or \r\n). The last line without terminator is
// returned as a value, io.EOF is returned only when there is no data left
func (ta *TextApi) Decode(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	line, err := ta.lineReader.ReadBytes('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error decoding value via text interaction API: %w", err)
		}
		if len(line) == 0 {
			return nil, io.EOF
		}
	}
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, nil
}

// Encode - write value with \n symbol in the end. The line is written with single Write call
func (ta *TextApi) Encode(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ta.buf = append(ta.buf[:0], value...)
	ta.buf = append(ta.buf, '\n')
	if _, err := ta.w.Write(ta.buf); err != nil {
		return fmt.Errorf("error encoding value via text interaction API: %w", err)
	}
	return nil
}

// singleLineReader - reads the underlying reader byte by byte, so the buffered line reader never consumes data
// beyond the line it returns. It is used when only one value is read from a shared input
type singleLineReader struct {
	r io.Reader
}

func newSingleLineReader(r io.Reader) *singleLineReader {
	return &singleLineReader{r: r}
}

func (slr *singleLineReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return slr.r.Read(p)
}
