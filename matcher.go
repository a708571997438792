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

package bloc

// StateMatcher is a func that can match a state to a criteria.
type StateMatcher func(State) bool

// MatchAll matches any state.
func MatchAll() StateMatcher {
	return func(s State) bool {
		return true
	}
}

// MatchSettled matches states that are not loading, nil states never match.
func MatchSettled() StateMatcher {
	return func(s State) bool {
		return s != nil && !s.Loading()
	}
}

// MatchLoading matches states that are loading, nil states never match.
func MatchLoading() StateMatcher {
	return func(s State) bool {
		return s != nil && s.Loading()
	}
}

// MatchAnyOf matches if any of several matchers matches.
func MatchAnyOf(matchers ...StateMatcher) StateMatcher {
	return func(s State) bool {
		for _, m := range matchers {
			if m(s) {
				return true
			}
		}

		return false
	}
}
