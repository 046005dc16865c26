package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	text := "Position: Backend Engineer\nCompany: Acme Corp\nWe use Go."

	md := Extract(text)

	assert.Equal(t, "Backend Engineer", md.Title)
	assert.Equal(t, "Acme Corp", md.Company)
}

func TestExtract_Defaults(t *testing.T) {
	for _, text := range []string{"", "nothing to see here", "Role:   \n"} {
		md := Extract(text)
		assert.NotEmpty(t, md.Title)
		assert.NotEmpty(t, md.Company)
	}

	md := Extract("Senior React Developer with Node.js and AWS experience")
	assert.Equal(t, DefaultTitle, md.Title)
	assert.Equal(t, DefaultCompany, md.Company)
}

func TestTitleAndCompany(t *testing.T) {
	assert.Equal(t, "Data Scientist", Title("job title: Data Scientist"))
	assert.Equal(t, "Globex", Company("About us: Globex"))
	assert.Equal(t, DefaultCompany, Company("no match"))
}
