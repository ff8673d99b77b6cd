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

package utils

import (
	"fmt"
	"slices"

	"github.com/greenmaskio/valuemask/pkg/toolkit"
)

var DefaultTransformerRegistry = NewTransformerRegistry()

type TransformerRegistry struct {
	M map[string]*toolkit.TransformerDefinition
}

func NewTransformerRegistry() *TransformerRegistry {
	return &TransformerRegistry{
		M: make(map[string]*toolkit.TransformerDefinition),
	}
}

func (tm *TransformerRegistry) Register(definition *toolkit.TransformerDefinition) error {
	if _, ok := tm.M[definition.Name]; ok {
		return fmt.Errorf("unable to register transformer: transformer with Name %s already exists",
			definition.Name)
	}
	tm.M[definition.Name] = definition
	return nil
}

func (tm *TransformerRegistry) MustRegister(definition *toolkit.TransformerDefinition) {
	if err := tm.Register(definition); err != nil {
		panic(err.Error())
	}
}

func (tm *TransformerRegistry) Get(name string) (*toolkit.TransformerDefinition, bool) {
	t, ok := tm.M[name]
	return t, ok
}

// Names - sorted names of the registered transformers
func (tm *TransformerRegistry) Names() []string {
	names := make([]string, 0, len(tm.M))
	for name := range tm.M {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
