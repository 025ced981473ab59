package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/thetatoken/checkpoints/blockchain"
	"github.com/thetatoken/checkpoints/checkpoint"
)

func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func TestCheckCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := execute("check", "9649", "0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c")
	assert.Nil(err)
	assert.Contains(out, "OK")

	_, err = execute("check", "9649", "0x0000000000000000000000000000000000000000000000000000000000000001")
	assert.Equal(checkpoint.ErrCheckpointMismatch, errors.Cause(err))

	_, err = execute("check", "abc", "0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c")
	assert.NotNil(err)

	_, err = execute("check", "9649", "0x1234")
	assert.NotNil(err)
}

func TestCheckpointsCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := execute("checkpoints")
	assert.Nil(err)
	assert.Contains(out, "0x71d89b625667c8f4f6b6c6a70ca68fa8143dda941f896273794e821923b0dd57")
	assert.Contains(out, "transactions:          23062")
}

func TestProgressCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := execute("progress", "--tx=0")
	assert.Nil(err)
	assert.Contains(out, "progress: 0.0000")
}

func TestAddCommand(t *testing.T) {
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "thetacheckpoint")
	assert.Nil(err)
	defer os.RemoveAll(dir)

	out, err := execute("add", "9649", "0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c",
		"--tx=1200", "--timestamp=1471000000", "--data="+dir)
	assert.Nil(err)
	assert.Contains(out, "tip: 9649")

	// Already in the index opened from the same directory.
	_, err = execute("add", "9649", "0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c", "--data="+dir)
	assert.Equal(blockchain.ErrNodeAlreadyAdded, errors.Cause(err))

	_, err = execute("add", "9649", "0x0000000000000000000000000000000000000000000000000000000000000001", "--data="+dir)
	assert.Equal(checkpoint.ErrCheckpointMismatch, errors.Cause(err))
}
