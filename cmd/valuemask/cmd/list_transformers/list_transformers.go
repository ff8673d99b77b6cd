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

package list_transformers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/valuemask/internal/transformers/utils"
	stringsUtils "github.com/greenmaskio/valuemask/internal/utils/strings"
	"github.com/greenmaskio/valuemask/pkg/toolkit"
)

const (
	JsonFormatName = "json"
	YamlFormatName = "yaml"
	TextFormatName = "text"
)

const descriptionMaxLength = 80

var (
	Cmd = &cobra.Command{
		Use:   "list-transformers [names...]",
		Short: "list of the allowed transformers with documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), utils.DefaultTransformerRegistry, args)
		},
	}
	format string
)

func run(w io.Writer, registry *utils.TransformerRegistry, transformerNames []string) error {
	defs, err := getDefinitions(registry, transformerNames)
	if err != nil {
		return err
	}

	switch format {
	case JsonFormatName:
		err = listTransformersJson(w, defs)
	case YamlFormatName:
		err = listTransformersYaml(w, defs)
	case TextFormatName:
		listTransformersText(w, defs)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
	if err != nil {
		return fmt.Errorf("error listing transformers: %w", err)
	}

	return nil
}

func getDefinitions(
	registry *utils.TransformerRegistry, transformerNames []string,
) ([]*toolkit.TransformerDefinition, error) {
	if len(transformerNames) == 0 {
		transformerNames = registry.Names()
	}
	res := make([]*toolkit.TransformerDefinition, 0, len(transformerNames))
	for _, name := range transformerNames {
		def, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown transformer name \"%s\"", name)
		}
		res = append(res, def)
	}
	return res, nil
}

func listTransformersJson(w io.Writer, defs []*toolkit.TransformerDefinition) error {
	return json.NewEncoder(w).Encode(defs)
}

func listTransformersYaml(w io.Writer, defs []*toolkit.TransformerDefinition) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(defs); err != nil {
		return err
	}
	return enc.Close()
}

func listTransformersText(w io.Writer, defs []*toolkit.TransformerDefinition) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Description"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	data := make([][]string, 0, len(defs))
	for _, def := range defs {
		data = append(data, []string{def.Name, stringsUtils.WrapString(def.Description, descriptionMaxLength)})
	}
	table.AppendBulk(data)
	table.Render()
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json|yaml]")
}
