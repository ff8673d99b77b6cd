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

package transformers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/valuemask/internal/transformers/utils"
	"github.com/greenmaskio/valuemask/pkg/generators"
	"github.com/greenmaskio/valuemask/pkg/generators/transformers"
	"github.com/greenmaskio/valuemask/pkg/toolkit"
)

const DateTransformerName = "date"

var (
	// DateThreshold - every generated date is strictly before this point
	DateThreshold = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	// dateLowerBound - generated dates start from the unix epoch
	dateLowerBound = time.Unix(0, 0).UTC()
)

var (
	ErrTimestampParse          = errors.New("unable to parse timestamp")
	ErrGeneratedDateOutOfRange = errors.New("generated date is out of range")
)

var DateTransformerDefinition = toolkit.NewTransformerDefinition(
	DateTransformerName,
	newDefaultDateTransformer,
).SetDescription(
	"Replace timestamp with offset (RFC 3339 or PostgreSQL timestamptz text) with a random calendar date " +
		"before " + DateThreshold.Format(time.DateOnly) + ". The original value is not used for generation",
)

// DateTransformer - generalizes the timestamp to a random date. The output does not depend on the input
type DateTransformer struct {
	timestamp *transformers.Timestamp
	threshold time.Time
}

func NewDateTransformer(g generators.Generator) (*DateTransformer, error) {
	limiter, err := transformers.NewTimestampLimiter(dateLowerBound, DateThreshold)
	if err != nil {
		return nil, fmt.Errorf("unable to create timestamp limiter: %w", err)
	}

	t, err := transformers.NewRandomTimestamp(transformers.DayTruncateName, limiter)
	if err != nil {
		return nil, err
	}

	if err = t.SetGenerator(g); err != nil {
		return nil, fmt.Errorf("unable to set generator: %w", err)
	}

	return &DateTransformer{
		timestamp: t,
		threshold: DateThreshold,
	}, nil
}

func newDefaultDateTransformer(_ context.Context) (toolkit.Transformer, error) {
	return NewDateTransformer(generators.NewCryptoRandom(transformers.TimestampTransformerByteLength))
}

func (dt *DateTransformer) Transform(_ context.Context, value []byte) ([]byte, error) {
	if _, err := ParseTimestamp(value); err != nil {
		return nil, err
	}

	res, err := dt.timestamp.Transform(nil)
	if err != nil {
		return nil, fmt.Errorf("error generating date: %w", err)
	}
	if !res.Before(dt.threshold) {
		log.Debug().
			Time("generated", res).
			Time("threshold", dt.threshold).
			Msg("generated date does not satisfy threshold")
		return nil, ErrGeneratedDateOutOfRange
	}

	return []byte(res.Format(time.DateOnly)), nil
}

// ParseTimestamp - parse timestamp with offset. It accepts RFC 3339 and PostgreSQL timestamptz text output
func ParseTimestamp(data []byte) (time.Time, error) {
	v := string(data)

	if res, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return res, nil
	}

	var tstz pgtype.Timestamptz
	if err := tstz.Scan(v); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrTimestampParse, err)
	}
	if !tstz.Valid || tstz.InfinityModifier != pgtype.Finite {
		return time.Time{}, fmt.Errorf("%w: timestamp is not a finite value", ErrTimestampParse)
	}
	return tstz.Time, nil
}

func init() {
	utils.DefaultTransformerRegistry.MustRegister(DateTransformerDefinition)
}
