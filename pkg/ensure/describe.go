package ensure

import "strings"

type describeOptions struct {
	articles bool
}

// DescribeOption configures Describe.
type DescribeOption func(*describeOptions)

// WithArticles prefixes the description with "a" or "an" where grammar calls
// for one. "undefined", "null" and "NaN" never take an article.
func WithArticles() DescribeOption {
	return func(o *describeOptions) { o.articles = true }
}

// Describe renders a descriptor or runtime kind as the human-readable noun
// phrase used in validation messages. Unions are joined with "or", using an
// Oxford comma for three or more alternatives.
func Describe(d Descriptor, opts ...DescribeOption) string {
	var o describeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return describe(d, o)
}

func describe(d Descriptor, o describeOptions) string {
	switch t := d.(type) {
	case Kind:
		return noun(string(t), o.articles)
	case *Enum:
		return noun(t.name, o.articles)
	case *Coercible:
		return noun(t.name, o.articles)
	case *Struct:
		return noun(string(KindObject), o.articles)
	case Union:
		parts := make([]string, len(t))
		for i, member := range t {
			parts[i] = describe(member, o)
		}
		return joinAlternatives(parts)
	default:
		return "unknown"
	}
}

// bareNouns never take an article, matching how they read in prose.
var bareNouns = map[string]struct{}{
	string(KindUndefined): {},
	string(KindNull):      {},
	string(KindNaN):       {},
}

func noun(name string, articles bool) string {
	if !articles {
		return name
	}
	if _, bare := bareNouns[name]; bare {
		return name
	}
	return article(name) + " " + name
}

func article(name string) string {
	if name == "" {
		return "a"
	}
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	default:
		return "a"
	}
}

func joinAlternatives(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
	}
}
