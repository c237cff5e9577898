package guard

import (
	"fmt"
	"net/url"
	"oracle-dashboard/internal/config"
	"regexp"
)

// Decision is the outcome of classifying a single navigation.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionRedirectLogin
	DecisionRedirectLanding
)

func (d Decision) String() string {
	switch d {
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectLanding:
		return "redirect_landing"
	default:
		return "allow"
	}
}

// Classifier holds the compiled route tables. It is immutable after
// NewClassifier and safe for concurrent use, Decide is a pure function of its
// arguments.
type Classifier struct {
	protected  []*regexp.Regexp
	publicAuth []*regexp.Regexp

	loginPath     string
	landing       string
	redirectParam string
}

func NewClassifier(cfg config.RoutesConfig) (*Classifier, error) {
	protected, err := compileExact(cfg.Protected)
	if err != nil {
		return nil, err
	}

	publicAuth, err := compileExact(cfg.PublicAuth)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		protected:     protected,
		publicAuth:    publicAuth,
		loginPath:     cfg.LoginPath,
		landing:       cfg.Landing,
		redirectParam: cfg.RedirectParam,
	}, nil
}

// compileExact anchors every route: "/profile" matches "/profile" and nothing
// else. Prefixes and wildcards get no special treatment.
func compileExact(routes []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(routes))

	for _, route := range routes {
		pattern, err := regexp.Compile("^" + regexp.QuoteMeta(route) + "$")
		if err != nil {
			return nil, fmt.Errorf("compiling route pattern %q: %w", route, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

// Decide classifies one path given whether a token is present. The protected
// check runs first: an unauthenticated visit to a protected path redirects to
// login regardless of any other condition. Only when that check passes are
// authenticated visits to public auth pages bounced to the landing page.
// Paths matching neither table always pass.
func (c *Classifier) Decide(path string, tokenPresent bool) Decision {
	if matchesAny(c.protected, path) && !tokenPresent {
		return DecisionRedirectLogin
	}

	if matchesAny(c.publicAuth, path) && tokenPresent {
		return DecisionRedirectLanding
	}

	return DecisionAllow
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(path) {
			return true
		}
	}

	return false
}

// LoginRedirectURL preserves where the visitor was headed:
// "/profile" becomes "/login?redirectedFrom=%2Fprofile".
func (c *Classifier) LoginRedirectURL(fromPath string) string {
	return c.loginPath + "?" + c.redirectParam + "=" + url.QueryEscape(fromPath)
}

func (c *Classifier) LandingURL() string {
	return c.landing
}

func (c *Classifier) LoginPath() string {
	return c.loginPath
}
