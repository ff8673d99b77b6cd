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

// defaultEmailDomains - domains of the generated emails. The reserved example domains never deliver mail
var defaultEmailDomains = []string{
	"example.com",
	"example.org",
	"example.net",
}

// defaultEmailAllowList - uppercase hex SHA-256 digests of the addresses that must be kept as is.
// The plaintext is not stored here
var defaultEmailAllowList = NewAllowList(
	"74543A64CCD723FCF559A6B63A6336310DDF1276BB948CE5E46D250173047B73",
	"CBAB6979D4864438C49C65B60B072C03D0ABD2B257D5363428BF9264BDF79686",
	"2F57C7BFAD33855D00315F04E36715D7EAC1CB90516BB025EEC416E8592771DA",
)
