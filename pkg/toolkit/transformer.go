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
	"bytes"
	"context"
	"errors"
	"fmt"
)

var ErrMultilineValue = errors.New("transformed value contains line break")

// Transformer - transforms one raw value into one anonymized value. The value never contains the line terminator
type Transformer interface {
	Transform(ctx context.Context, value []byte) ([]byte, error)
}

// Apply - run transformer for the single value. Empty value is returned as is without calling the transformer.
// The result is guaranteed to be a single line
func Apply(ctx context.Context, t Transformer, value []byte) ([]byte, error) {
	if len(value) == 0 {
		return value, nil
	}
	res, err := t.Transform(ctx, value)
	if err != nil {
		return nil, err
	}
	if bytes.ContainsAny(res, "\r\n") {
		return nil, fmt.Errorf("unable to write value: %w", ErrMultilineValue)
	}
	return res, nil
}
