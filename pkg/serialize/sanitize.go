package serialize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// WithHelpTextPolicy overrides the sanitizer applied to help text before it
// is serialized.
func WithHelpTextPolicy(policy *bluemonday.Policy) Option {
	return func(s *Serializer) {
		if policy != nil {
			s.helpText = policy
		}
	}
}

// sanitizeHelp strips help text down to harmless inline markup. The output
// ships to a remote client that injects it verbatim.
func (s *Serializer) sanitizeHelp(raw string) string {
	if raw == "" {
		return ""
	}
	policy := s.helpText
	if policy == nil {
		policy = defaultHelpPolicy()
	}
	return strings.TrimSpace(policy.Sanitize(raw))
}

func defaultHelpPolicy() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("a", "abbr", "b", "br", "code", "em", "i", "small", "span", "strong", "sub", "sup")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.RequireNoFollowOnLinks(true)
		helpPolicy = policy
	})
	return helpPolicy
}
