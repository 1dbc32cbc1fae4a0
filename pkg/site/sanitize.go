package site

import (
	"github.com/microcosm-cc/bluemonday"
)

// sanitizeMarkup strips scripts, event handlers and unknown elements from
// pre-rendered markup. Custom elements used by the component runtime must be
// listed in allow to survive.
func sanitizeMarkup(markup string, allow []string) string {
	policy := bluemonday.UGCPolicy()
	policy.AllowDataAttributes()
	policy.AllowAttrs("class", "id", "role").Globally()
	if len(allow) > 0 {
		policy.AllowElements(allow...)
	}
	return policy.Sanitize(markup)
}
