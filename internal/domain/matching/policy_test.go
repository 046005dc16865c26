package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("", nil)
	require.NoError(t, err)
	assert.Equal(t, PolicySubstring, p.Name())

	p, err = PolicyByName(" Alias ", nil)
	require.NoError(t, err)
	assert.Equal(t, PolicyAlias, p.Name())

	_, err = PolicyByName("fuzzy", nil)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestSubstringPolicy_Matches(t *testing.T) {
	p := SubstringPolicy{}

	assert.True(t, p.Matches("AWS", "aws"))
	assert.True(t, p.Matches("React", "react native"))
	assert.True(t, p.Matches("React Native", "react"))
	assert.False(t, p.Matches("AWS", ""))
	assert.False(t, p.Matches("", "aws"))
	assert.False(t, p.Matches("Vue", "React"))
}
