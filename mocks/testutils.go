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

package mocks

import (
	"fmt"
	"reflect"

	"github.com/looplab/bloc"
)

// CompareStates compares two states, ignoring their dispatchers.
func CompareStates(s1, s2 bloc.State) error {
	if s1.Loading() != s2.Loading() {
		return fmt.Errorf("incorrect loading flag: %v (should be %v)", s1.Loading(), s2.Loading())
	}

	if !reflect.DeepEqual(s1.WithDispatcher(nil), s2.WithDispatcher(nil)) {
		return fmt.Errorf("incorrect state: %v (should be %v)", s1, s2)
	}

	return nil
}

// EqualStates compares two slices of states, ignoring their dispatchers.
func EqualStates(states1, states2 []bloc.State) bool {
	if len(states1) != len(states2) {
		return false
	}

	for i, s1 := range states1 {
		s2 := states2[i]

		if s1.Loading() != s2.Loading() {
			return false
		}

		if !reflect.DeepEqual(s1.WithDispatcher(nil), s2.WithDispatcher(nil)) {
			return false
		}
	}

	return true
}
