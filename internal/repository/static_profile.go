package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// StaticProfile serves the same skill list for every user. An empty list is
// reported as an unavailable profile.
type StaticProfile struct {
	Skills []string
}

func NewStaticProfile(csv string) StaticProfile {
	out := make([]string, 0)
	for _, s := range strings.Split(csv, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return StaticProfile{Skills: out}
}

func (p StaticProfile) FetchUserSkills(_ context.Context, _ uuid.UUID) ([]string, error) {
	if len(p.Skills) == 0 {
		return nil, ErrProfileUnavailable
	}
	out := make([]string, len(p.Skills))
	copy(out, p.Skills)
	return out, nil
}
