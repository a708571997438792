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

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestProcessorError(t *testing.T) {
	cause := errors.New("handling failed")
	id := uuid.New()

	err := ProcessorError{
		Err:     cause,
		Event:   TestEvent{},
		EventID: id,
	}

	expected := "processor: handling failed (Test) [" + id.String() + "]"
	if err.Error() != expected {
		t.Error("the error string should be correct:", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("the error should unwrap to the cause")
	}

	err = ProcessorError{}
	if err.Error() != "processor: unknown error" {
		t.Error("the error string should be correct:", err.Error())
	}
}
