package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_CloneIsIndependent(t *testing.T) {
	orig := Row{
		"title":   "Site",
		"tags":    []string{"go"},
		"metrics": map[string]any{"users": 1},
	}

	c := orig.Clone()
	c["title"] = "Other"
	c["tags"].([]string)[0] = "rust"
	c["metrics"].(map[string]any)["users"] = 2

	assert.Equal(t, "Site", orig["title"])
	assert.Equal(t, []string{"go"}, orig["tags"])
	assert.Equal(t, map[string]any{"users": 1}, orig["metrics"])
}
