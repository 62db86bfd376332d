// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ai

import (
	"encoding/json"
	"strings"
)

// decodeJSON unmarshals a model response into out. The response is
// tried verbatim first; if that fails, the first brace-delimited span
// is extracted and tried instead. Returns false when neither parses.
func decodeJSON(response string, out interface{}) bool {
	if json.Unmarshal([]byte(response), out) == nil {
		return true
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(response[start:end+1]), out) == nil
}
