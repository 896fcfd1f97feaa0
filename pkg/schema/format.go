package schema

import "strings"

// Option configures violation formatting.
type Option func(*formatConfig)

type formatConfig struct {
	pathSeparator    string
	pathPrefix       string
	messageSeparator string
}

func newFormatConfig(opts ...Option) *formatConfig {
	cfg := &formatConfig{
		pathSeparator:    ".",
		messageSeparator: "\n",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// PathSeparator sets the string joining path segments. Default is ".".
func PathSeparator(sep string) Option {
	return func(c *formatConfig) {
		c.pathSeparator = sep
	}
}

// PathPrefix prepends a segment to every violation path.
func PathPrefix(prefix string) Option {
	return func(c *formatConfig) {
		c.pathPrefix = prefix
	}
}

// MessageSeparator sets the string joining messages in Error(). Default is
// a newline.
func MessageSeparator(sep string) Option {
	return func(c *formatConfig) {
		c.messageSeparator = sep
	}
}

// Messages formats violations into one message per violated constraint, in
// the order reported by the engine. Each message is "path: detail" when the
// violation has a path, or the bare detail otherwise.
func Messages(violations []Violation, opts ...Option) []string {
	return formatAll(violations, newFormatConfig(opts...))
}

func formatAll(violations []Violation, cfg *formatConfig) []string {
	var out []string
	for _, v := range violations {
		out = append(out, formatViolation(v, nil, cfg)...)
	}
	return out
}

// formatViolation recurses over the violation-kind tags: nested kinds extend
// the path with a literal marker and descend into the inner violations, flat
// kinds render directly.
func formatViolation(v Violation, base []string, cfg *formatConfig) []string {
	path := make([]string, 0, len(base)+len(v.Path)+1)
	path = append(path, base...)
	path = append(path, v.Path...)

	switch v.Kind {
	case KindInvalidArguments:
		return formatNested(v, append(path, "arguments"), cfg)
	case KindInvalidReturnType:
		return formatNested(v, append(path, "returnType"), cfg)
	default:
		return []string{render(path, v.Message, cfg)}
	}
}

func formatNested(v Violation, base []string, cfg *formatConfig) []string {
	// A nested kind without inner detail degrades to its own message.
	if len(v.Inner) == 0 {
		return []string{render(base, v.Message, cfg)}
	}

	var out []string
	for _, inner := range v.Inner {
		out = append(out, formatViolation(inner, base, cfg)...)
	}
	return out
}

func render(path []string, message string, cfg *formatConfig) string {
	joined := strings.Join(path, cfg.pathSeparator)
	if cfg.pathPrefix != "" {
		if joined != "" {
			joined = cfg.pathPrefix + cfg.pathSeparator + joined
		} else {
			joined = cfg.pathPrefix
		}
	}

	if joined == "" {
		return message
	}
	return joined + ": " + message
}
