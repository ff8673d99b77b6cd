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
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/valuemask/pkg/generators"
)

var dateOutputRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func requireGeneratedDate(t *testing.T, res []byte) time.Time {
	t.Helper()
	require.Regexp(t, dateOutputRegexp, string(res))
	d, err := time.Parse(time.DateOnly, string(res))
	require.NoError(t, err)
	require.True(t, d.Before(DateThreshold), "date %s must be before threshold", d)
	require.False(t, d.Before(time.Unix(0, 0).UTC()), "date %s must be after epoch", d)
	return d
}

func TestDateTransformer_Transform(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "rfc3339", input: "2023-05-26T10:00:00+02:00"},
		{name: "rfc3339 utc with fraction", input: "2023-05-26T10:00:00.123456Z"},
		{name: "rfc3339 before threshold", input: "1985-10-26T01:21:00-08:00"},
		{name: "postgresql hour offset", input: "2023-05-26 10:00:00+02"},
		{name: "postgresql negative hour offset", input: "1999-01-08 04:05:06-08"},
		{name: "postgresql minute offset", input: "2023-05-26 10:00:00.123+05:30"},
		{name: "postgresql second offset", input: "1890-01-01 00:00:00+00:19:32"},
		{name: "postgresql bc", input: "0044-03-15 12:00:00+00 BC"},
	}
	dt, err := NewDateTransformer(generators.NewRandomBytes(1, 16))
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dt.Transform(context.Background(), []byte(tt.input))
			require.NoError(t, err)
			d := requireGeneratedDate(t, res)
			log.Debug().Str("original", tt.input).Time("result", d).Msg("")
		})
	}
}

func TestDateTransformer_Transform_parse_error(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "garbage", input: "not a date"},
		{name: "date only", input: "2023-05-26"},
		{name: "rfc3339 without offset", input: "2023-05-26T10:00:00"},
		{name: "postgresql without offset", input: "2023-05-26 10:00:00"},
		{name: "infinity", input: "infinity"},
		{name: "negative infinity", input: "-infinity"},
		{name: "spaces", input: "   "},
	}
	dt, err := NewDateTransformer(generators.NewRandomBytes(1, 16))
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dt.Transform(context.Background(), []byte(tt.input))
			require.ErrorIs(t, err, ErrTimestampParse)
			require.Nil(t, res)
		})
	}
}

func TestDateTransformer_Transform_repeated(t *testing.T) {
	dt, err := NewDateTransformer(generators.NewRandomBytes(42, 16))
	require.NoError(t, err)
	input := []byte("2023-05-26T10:00:00+02:00")
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		res, err := dt.Transform(context.Background(), input)
		require.NoError(t, err)
		requireGeneratedDate(t, res)
		seen[string(res)] = struct{}{}
	}
	// The result does not depend on the input
	assert.Greater(t, len(seen), 1)
}

func TestDateTransformer_Transform_crypto_generator(t *testing.T) {
	tr, err := newDefaultDateTransformer(context.Background())
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		res, err := tr.Transform(context.Background(), []byte("2023-05-26T10:00:00Z"))
		require.NoError(t, err)
		requireGeneratedDate(t, res)
	}
}

func TestDateTransformer_Transform_upper_bound(t *testing.T) {
	// Max seconds and nanoseconds project to the last moment before the threshold
	g := &constGenerator{data: []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}}
	dt, err := NewDateTransformer(g)
	require.NoError(t, err)
	res, err := dt.Transform(context.Background(), []byte("2023-05-26T10:00:00Z"))
	require.NoError(t, err)
	requireGeneratedDate(t, res)
}

func TestDateTransformer_Transform_lower_bound(t *testing.T) {
	dt, err := NewDateTransformer(&constGenerator{data: make([]byte, 16)})
	require.NoError(t, err)
	res, err := dt.Transform(context.Background(), []byte("2023-05-26T10:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01", string(res))
}

func TestDateTransformer_Transform_generator_error(t *testing.T) {
	dt, err := NewDateTransformer(&failingGenerator{size: 16})
	require.NoError(t, err)
	_, err = dt.Transform(context.Background(), []byte("2023-05-26T10:00:00Z"))
	require.ErrorIs(t, err, errTestGenerator)
}

func TestNewDateTransformer_short_generator(t *testing.T) {
	_, err := NewDateTransformer(generators.NewRandomBytes(1, 8))
	require.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{
			input:    "2023-05-26T10:00:00+02:00",
			expected: time.Date(2023, 5, 26, 8, 0, 0, 0, time.UTC),
		},
		{
			input:    "2023-05-26 10:00:00+02",
			expected: time.Date(2023, 5, 26, 8, 0, 0, 0, time.UTC),
		},
		{
			input:    "2023-05-26 10:00:00.5-01:30",
			expected: time.Date(2023, 5, 26, 11, 30, 0, 500000000, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := ParseTimestamp([]byte(tt.input))
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(res), "expected %s got %s", tt.expected, res)
		})
	}
}
