package router

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches one {name} segment inside a path template.
var placeholderPattern = regexp.MustCompile(`\{([^/{}]+)\}`)

// placeholderName validates that a placeholder can become a regexp group name.
var placeholderName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Route binds an HTTP method and a compiled path template to a handler.
// Routes are created at registration time and never mutated afterwards,
// so the route table can be shared across goroutines without locking.
//
// Matching is exact over the full path and case-sensitive; trailing
// slashes are significant ("/companies" and "/companies/" are distinct).
type Route struct {
	method  string
	pattern string
	matcher *regexp.Regexp
	handler HandlerFunc
}

// newRoute compiles the path template into an anchored matcher.
// Compilation happens exactly once, here; dispatch only executes the
// already-compiled expression.
//
// A template consists of literal segments and {name} placeholders. Each
// placeholder matches one or more characters excluding '/', so it can
// never span multiple path segments. Literal parts are quoted, keeping
// regexp metacharacters in templates inert.
func newRoute(method, pattern string, handler HandlerFunc) (*Route, error) {
	matcher, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	return &Route{
		method:  method,
		pattern: pattern,
		matcher: matcher,
		handler: handler,
	}, nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	var expr strings.Builder
	expr.WriteString("^")

	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(pattern, -1) {
		name := pattern[loc[2]:loc[3]]
		if !placeholderName.MatchString(name) {
			return nil, fmt.Errorf("invalid placeholder name %q in route pattern %q", name, pattern)
		}

		expr.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		expr.WriteString("(?P<" + name + ">[^/]+)")
		last = loc[1]
	}
	expr.WriteString(regexp.QuoteMeta(pattern[last:]))
	expr.WriteString("$")

	matcher, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("compiling route pattern %q: %w", pattern, err)
	}

	return matcher, nil
}

// match reports whether path satisfies the route's template. On success
// it returns the placeholder name → matched substring mapping; on
// failure it returns (nil, false) without error so the dispatcher can
// keep scanning the table.
func (rt *Route) match(path string) (map[string]string, bool) {
	submatches := rt.matcher.FindStringSubmatch(path)
	if submatches == nil {
		return nil, false
	}

	params := make(map[string]string)
	for i, name := range rt.matcher.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		params[name] = submatches[i]
	}

	return params, true
}

// Method returns the HTTP method the route is registered under.
func (rt *Route) Method() string { return rt.method }

// Pattern returns the original, uncompiled path template.
func (rt *Route) Pattern() string { return rt.pattern }
