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

package show_transformer

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

const descriptionMaxLength = 60

var (
	Cmd = &cobra.Command{
		Use:   "show-transformer name",
		Args:  cobra.ExactArgs(1),
		Short: "show transformer details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), utils.DefaultTransformerRegistry, args[0])
		},
	}
	format string
)

func run(w io.Writer, registry *utils.TransformerRegistry, name string) error {
	def, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("unknown transformer \"%s\"", name)
	}

	var err error
	switch format {
	case JsonFormatName:
		err = json.NewEncoder(w).Encode(def)
	case YamlFormatName:
		err = showTransformerYaml(w, def)
	case TextFormatName:
		showTransformerText(w, def)
	default:
		return fmt.Errorf("unknown format \"%s\"", format)
	}
	if err != nil {
		return fmt.Errorf("error showing transformer: %w", err)
	}

	return nil
}

func showTransformerYaml(w io.Writer, def *toolkit.TransformerDefinition) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(def); err != nil {
		return err
	}
	return enc.Close()
}

func showTransformerText(w io.Writer, def *toolkit.TransformerDefinition) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.AppendBulk([][]string{
		{def.Name, "description", stringsUtils.WrapString(def.Description, descriptionMaxLength)},
		{def.Name, "usage", fmt.Sprintf("valuemask %s [--stream] < input", def.Name)},
	})
	table.Render()
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json|yaml]")
}
