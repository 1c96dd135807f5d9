package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecWithoutAppFailsGracefully(t *testing.T) {
	SetApp(nil)

	// "help" is a registry command line, not a flag; running it with no app
	// must return an error instead of dereferencing nil
	err := execCmd.RunE(execCmd, []string{"help"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}
