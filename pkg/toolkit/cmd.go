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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var ErrInterrupted = errors.New("interrupted by signal")

// Cmd - process adapter for the Transformer. By default it reads exactly one line from stdin, transforms it and
// writes exactly one line to stdout. In stream mode the same cycle is repeated for every line until EOF
type Cmd struct {
	*cobra.Command
	definition      *TransformerDefinition
	printDefinition bool
	stream          bool
}

func NewCmd(definition *TransformerDefinition) *Cmd {

	if definition == nil {
		panic("definition cannot be nil")
	}

	if definition.Name == "" {
		panic("definition Name attribute is required")
	}

	if definition.New == nil {
		panic("definition New cannot be nil")
	}

	tc := &Cmd{
		definition: definition,
	}

	cmd := &cobra.Command{
		Use:   definition.Name,
		Short: definition.Description,
		Args:  cobra.NoArgs,
		// stdout is the data channel, nothing except transformed values must be written there
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          tc.run,
	}
	tc.Command = cmd
	tc.setupDefaultCmd()

	return tc
}

func (c *Cmd) setupDefaultCmd() {
	c.Flags().BoolVar(&c.stream, "stream", false, "transform every line until EOF instead of a single line")
	c.Flags().BoolVar(&c.printDefinition, "print-definition", false, "print transformer definition")
	c.MarkFlagsMutuallyExclusive("stream", "print-definition")
}

func (c *Cmd) run(cmd *cobra.Command, args []string) error {
	if c.printDefinition {
		return c.performPrintDefinition(cmd.OutOrStdout())
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	done := make(chan struct{})
	eg := &errgroup.Group{}
	eg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)
		select {
		case s := <-sig:
			log.Debug().Str("signal", s.String()).Msg("received signal")
			cancel()
			return ErrInterrupted
		case <-ctx.Done():
		case <-done:
		}
		return nil
	})

	r := cmd.InOrStdin()
	if !c.stream {
		// Lines after the first one belong to the next consumer of the input
		r = newSingleLineReader(r)
	}

	eg.Go(func() error {
		err := c.performTransform(ctx, NewTextApi(r, cmd.OutOrStdout()))
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			log.Debug().Err(err).Str("transformer", c.definition.Name).Msg("exited with error")
			cancel()
			return err
		}
		close(done)
		log.Debug().Str("transformer", c.definition.Name).Msg("exiting normally")
		return nil
	})

	return eg.Wait()
}

func (c *Cmd) performPrintDefinition(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(c.definition); err != nil {
		return fmt.Errorf("error encoding transformer definition: %w", err)
	}
	return nil
}

func (c *Cmd) performTransform(ctx context.Context, api InteractionApi) error {
	t, err := c.definition.New(ctx)
	if err != nil {
		return fmt.Errorf("error initializing transformer: %w", err)
	}

	for lineNum := 1; ; lineNum++ {
		value, err := decode(ctx, api)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			if c.stream {
				return nil
			}
			// Closed input in one-shot mode is an empty value
			value = []byte{}
		}

		res, err := Apply(ctx, t, value)
		if err != nil {
			return fmt.Errorf("transformation error at line %d: %w", lineNum, err)
		}

		if err = api.Encode(ctx, res); err != nil {
			return err
		}

		if !c.stream {
			return nil
		}
	}
}

type decodeResult struct {
	value []byte
	err   error
}

// decode - read the value in the separate goroutine since reading from stdin cannot be interrupted
func decode(ctx context.Context, api InteractionApi) ([]byte, error) {
	resCh := make(chan decodeResult, 1)
	go func() {
		v, err := api.Decode(ctx)
		resCh <- decodeResult{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resCh:
		return res.value, res.err
	}
}
