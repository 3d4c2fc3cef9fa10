package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/directdev/portal/internal/syncer"
)

func TestParseFlow(t *testing.T) {
	assert.Equal(t, syncer.Init{}, parseFlow("init", nil))
	assert.Equal(t, syncer.Common{}, parseFlow("common", nil))
	assert.Nil(t, parseFlow("weekly", nil))
}

func TestParseFlow_Resources(t *testing.T) {
	flow := parseFlow("resources", []string{"COMP6048", "COMP6049"})

	res, ok := flow.(syncer.Resources)
	if !ok {
		t.Fatalf("expected syncer.Resources, got %T", flow)
	}
	assert.Len(t, res.Courses, 2)
	assert.Equal(t, "COMP6048", res.Courses[0].ID)
	assert.Equal(t, "COMP6049", res.Courses[1].ID)
}
