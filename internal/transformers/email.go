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
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/valuemask/internal/transformers/utils"
	"github.com/greenmaskio/valuemask/pkg/generators"
	"github.com/greenmaskio/valuemask/pkg/generators/transformers"
	"github.com/greenmaskio/valuemask/pkg/toolkit"
)

const EmailTransformerName = "email"

// emailLocalPartLength - length of the canonical uuid text
const emailLocalPartLength = 36

// emailGenerateAttempts - how many times the email is regenerated if it matches the original
const emailGenerateAttempts = 3

var errEmailNotChanged = errors.New("generated email equals the original")

var EmailTransformerDefinition = toolkit.NewTransformerDefinition(
	EmailTransformerName,
	newDefaultEmailTransformer,
).SetDescription(
	"Replace email with <random uuid>@<domain> where domain is one of " + strings.Join(defaultEmailDomains, ", ") +
		". Emails which SHA-256 digest is in the allow list are kept as is",
)

type EmailTransformer struct {
	hash      *generators.Hash
	allowList *AllowList
	localPart *transformers.RandomUuidTransformer
	domain    *transformers.RandomChoiceTransformer
}

// NewEmailTransformer - create email transformer. localPartGen is used for the uuid local part and domainGen for
// the domain choice
func NewEmailTransformer(
	localPartGen, domainGen generators.Generator, domains []string, allowList *AllowList,
) (*EmailTransformer, error) {
	h, err := generators.NewHash(nil, generators.Sha256Name)
	if err != nil {
		return nil, fmt.Errorf("unable to create hash function: %w", err)
	}

	lp := transformers.NewRandomUuidTransformer()
	if err = lp.SetGenerator(localPartGen); err != nil {
		return nil, fmt.Errorf("unable to set local part generator: %w", err)
	}

	d, err := transformers.NewRandomChoiceTransformer(domains)
	if err != nil {
		return nil, fmt.Errorf("unable to create domain choice: %w", err)
	}
	if err = d.SetGenerator(domainGen); err != nil {
		return nil, fmt.Errorf("unable to set domain generator: %w", err)
	}

	if allowList == nil {
		allowList = NewAllowList()
	}

	return &EmailTransformer{
		hash:      h,
		allowList: allowList,
		localPart: lp,
		domain:    d,
	}, nil
}

func newDefaultEmailTransformer(_ context.Context) (toolkit.Transformer, error) {
	lp := transformers.NewRandomUuidTransformer()
	return NewEmailTransformer(
		generators.NewCryptoRandom(lp.GetRequiredGeneratorByteLength()),
		generators.NewCryptoRandom(8),
		defaultEmailDomains,
		defaultEmailAllowList,
	)
}

func (et *EmailTransformer) Transform(_ context.Context, value []byte) ([]byte, error) {
	email := bytes.Trim(value, "\r\n")

	digest, err := et.Digest(email)
	if err != nil {
		return nil, err
	}
	if et.allowList.Contains(digest) {
		log.Debug().Str("digest", digest).Msg("email is in the allow list")
		return email, nil
	}

	for i := 0; i < emailGenerateAttempts; i++ {
		res, err := et.generateEmail()
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(res, email) {
			return res, nil
		}
	}
	return nil, errEmailNotChanged
}

// Digest - uppercase hex encoded SHA-256 of the value
func (et *EmailTransformer) Digest(value []byte) (string, error) {
	sum, err := et.hash.Generate(value)
	if err != nil {
		return "", fmt.Errorf("unable to calculate digest: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(sum)), nil
}

func (et *EmailTransformer) generateEmail() ([]byte, error) {
	id, err := et.localPart.Transform(nil)
	if err != nil {
		return nil, fmt.Errorf("unable to generate local part: %w", err)
	}
	domain, err := et.domain.Transform(nil)
	if err != nil {
		return nil, fmt.Errorf("unable to choose domain: %w", err)
	}

	res := make([]byte, 0, emailLocalPartLength+len("@")+len(domain))
	res = append(res, id.String()...)
	res = append(res, '@')
	return append(res, domain...), nil
}

func init() {
	utils.DefaultTransformerRegistry.MustRegister(EmailTransformerDefinition)
}
