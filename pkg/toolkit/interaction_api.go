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
	"context"
	"io"
)

// InteractionApi - API for interaction between the orchestrator and the Cmd transformer. It must respect
// context cancellation and keep one value per line
type InteractionApi interface {
	// SetWriter - assign writer
	SetWriter(w io.Writer)
	// SetReader - assign reader
	SetReader(r io.Reader)
	// Encode - write encoded value with \n symbol in the end into io.Writer
	Encode(ctx context.Context, value []byte) error
	// Decode - read value with new line from io.Reader. Returns io.EOF when there is nothing to read
	Decode(ctx context.Context) ([]byte, error)
}

var _ InteractionApi = (*TextApi)(nil)
