package reviews

import (
	"encoding/json"
	"errors"
	"regexp"
	"sort"

	"github.com/richxcame/route-reviews/pkg/httpclient"
)

const maxRawErrorLen = 160

var messagePattern = regexp.MustCompile(`"message"\s*:\s*"([^"]+)"`)

// ErrorMessage extracts a user-presentable message from a failed API call.
// It returns "" when nothing useful can be extracted; callers supply their
// own generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return extractMessage(httpErr.Body)
	}

	if errors.Is(err, ErrMalformedResponse) {
		return err.Error()
	}

	return ""
}

// extractMessage parses an error body best-effort: a JSON object with a
// "message" field, then the first value of an "errors" mapping (first
// element when the value is an array), then a regex scan for an embedded
// message, then the raw text truncated.
func extractMessage(body string) string {
	var envelope struct {
		Message string                     `json:"message"`
		Errors  map[string]json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if msg := firstFieldError(envelope.Errors); msg != "" {
			return msg
		}
	}

	if m := messagePattern.FindStringSubmatch(body); m != nil {
		return m[1]
	}

	return truncate(body, maxRawErrorLen)
}

// firstFieldError picks the first field's message, visiting keys in sorted
// order so the choice is deterministic.
func firstFieldError(fields map[string]json.RawMessage) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := fields[key]

		var single string
		if err := json.Unmarshal(raw, &single); err == nil && single != "" {
			return single
		}

		var many []string
		if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 && many[0] != "" {
			return many[0]
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
