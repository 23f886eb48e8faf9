package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantAction string
		wantArgs   []string
	}{
		{name: "plain", text: "start", wantAction: "start", wantArgs: []string{}},
		{name: "slash", text: "/vote @carol", wantAction: "vote", wantArgs: []string{"@carol"}},
		{name: "bot suffix", text: "/join@partybot AB12CD34", wantAction: "join", wantArgs: []string{"AB12CD34"}},
		{name: "extra spaces", text: "  create   Friday  night es ", wantAction: "create", wantArgs: []string{"Friday", "night", "es"}},
		{name: "upper case", text: "HELP", wantAction: "help", wantArgs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, cmd.Action)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "/"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrEmptyCommand, "text %q", text)
	}
}
