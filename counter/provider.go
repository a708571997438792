// Copyright (c) 2026 - The Bloc authors.
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

package counter

// Provider computes counter values. It is the injectable seam for the
// domain's arithmetic and must be free of state and side effects.
type Provider interface {
	// Increment returns the value following v.
	Increment(v int) int
	// Reset returns the start value.
	Reset() int
}

// NewProvider returns the default Provider, counting up in steps of one
// and starting over at zero.
func NewProvider() Provider {
	return &provider{}
}

type provider struct{}

func (p *provider) Increment(v int) int {
	return v + 1
}

func (p *provider) Reset() int {
	return 0
}
