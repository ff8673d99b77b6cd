// Copyright 2023 Greenmask
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

package domains

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/greenmaskio/valuemask/internal/utils/logger"
)

var (
	Cfg  *Config
	once sync.Once
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = &Config{
				Log: LogConfig{
					Format: logger.LogFormatTextValue,
					Level:  zerolog.LevelInfoValue,
				},
			}
		},
	)
	return Cfg
}

type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}
