package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want View
	}{
		{"", ViewHome},
		{"home", ViewHome},
		{"Projects", ViewProjects},
		{" contact ", ViewContact},
		{"resume", ViewResume},
	}
	for _, tt := range tests {
		got, err := ParseView(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseView_Unknown(t *testing.T) {
	_, err := ParseView("blog")
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Contains(t, err.Error(), "blog")
}

func TestViewPath(t *testing.T) {
	assert.Equal(t, "/", ViewHome.Path())
	assert.Equal(t, "/projects", ViewProjects.Path())
	assert.Equal(t, "Resume", ViewResume.Title())
}
