package console_test

import (
	"bytes"
	"testing"

	"github.com/Prelang/prelang-buildpack/internal/adapters/console"
	"github.com/stretchr/testify/assert"
)

func newPlainConsole() (*console.Console, *bytes.Buffer) {
	var buf bytes.Buffer
	c := console.NewWithWriter(&buf)
	c.DisableColor()
	return c, &buf
}

func TestConsole_TopicAndPuts(t *testing.T) {
	c, buf := newPlainConsole()

	c.Topic("Preparing app for Rails asset pipeline")
	c.Puts("Asset precompilation completed (1.25s)\nCleaning assets")

	assert.Equal(t,
		"-----> Preparing app for Rails asset pipeline\n"+
			"       Asset precompilation completed (1.25s)\n"+
			"       Cleaning assets\n",
		buf.String())
}

func TestConsole_Warn(t *testing.T) {
	c, buf := newPlainConsole()

	c.Warn("Include 'rails_12factor' gem to enable all platform features")

	assert.Equal(t,
		"\n###### WARNING:\n       Include 'rails_12factor' gem to enable all platform features\n",
		buf.String())
}

func TestConsole_ErrorPrintsOutputVerbatim(t *testing.T) {
	c, buf := newPlainConsole()

	c.Error("Precompiling assets failed.", "SyntaxError: unexpected token\n  at app.js:3")

	assert.Equal(t,
		" !\n !     Precompiling assets failed.\n !\nSyntaxError: unexpected token\n  at app.js:3\n",
		buf.String())
}
