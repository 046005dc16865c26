package matching

import (
	"errors"
	"fmt"
	"strings"

	"skill-gap/internal/domain/skill"
)

const (
	PolicySubstring = "substring"
	PolicyAlias     = "alias"
)

var ErrUnknownPolicy = errors.New("unknown match policy")

// Policy decides whether a known user skill satisfies a required skill.
type Policy interface {
	Name() string
	Matches(required, user string) bool
}

// SubstringPolicy matches on normalized equality or containment in either
// direction. Punctuation is significant, so "nodejs" does not satisfy "Node.js".
type SubstringPolicy struct{}

func (SubstringPolicy) Name() string { return PolicySubstring }

func (SubstringPolicy) Matches(required, user string) bool {
	return substringMatch(skill.Normalize(required), skill.Normalize(user))
}

func substringMatch(r, u string) bool {
	if r == "" || u == "" {
		return false
	}
	return r == u || strings.Contains(u, r) || strings.Contains(r, u)
}

// AliasPolicy resolves both sides through an alias table before applying the
// substring rule.
type AliasPolicy struct {
	aliases skill.AliasTable
}

func NewAliasPolicy(t *skill.Taxonomy, extra map[string]string) AliasPolicy {
	return AliasPolicy{aliases: skill.NewAliasTable(t, extra)}
}

func (AliasPolicy) Name() string { return PolicyAlias }

func (p AliasPolicy) Matches(required, user string) bool {
	return substringMatch(p.aliases.Resolve(required), p.aliases.Resolve(user))
}

func PolicyByName(name string, t *skill.Taxonomy) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicySubstring:
		return SubstringPolicy{}, nil
	case PolicyAlias:
		return NewAliasPolicy(t, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
