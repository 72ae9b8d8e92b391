package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		arg      string
		expected int
		wantErr  bool
	}{
		{arg: "1", expected: 0},
		{arg: "12", expected: 11},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "two", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parsePosition(tt.arg)
			if tt.wantErr {
				assert.ErrorContains(t, err, "must be a number starting at 1")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRootCommandGroups(t *testing.T) {
	root := NewRootCmd()

	groups := map[string][]string{}
	for _, c := range root.Commands() {
		groups[c.GroupID] = append(groups[c.GroupID], c.Name())
	}

	assert.ElementsMatch(t, []string{"add", "build", "clear", "components", "compose", "move", "remove", "show"}, groups["builder"])
	assert.ElementsMatch(t, []string{"generate", "generated"}, groups["generator"])
	assert.ElementsMatch(t, []string{"deploy", "networks"}, groups["deployment"])
	assert.ElementsMatch(t, []string{"config", "init", "serve"}, groups["management"])
	assert.Equal(t, []string{"version"}, groups[""])
}

func TestVersionSkipsAppSetup(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "mosaic version")
}

func TestGetAppWithoutSetup(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := getApp(cmd)
	assert.EqualError(t, err, "app not initialized")
}
