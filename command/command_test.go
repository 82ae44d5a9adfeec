package command

import (
	"sort"
	"testing"

	"framelab/framebuf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"clear", Clear},
		{"filled-rectangle", FilledRectangle},
		{"chessboard", ChessBoard},
		{"canvas", OpenCanvas},
		{"rotate-left", RotateLeft},
		{"0", Clear},
		{"e", FilledRectangle},
		{"left", RotateLeft},
		{"9", Swaps},
		{"s", Screenshot},
	}
	for _, x := range tests {
		t.Run(x.in, func(t *testing.T) {
			cmd, err := ParseCommand(x.in)
			require.NoError(t, err)
			assert.Equal(t, x.want, cmd)
		})
	}

	_, err := ParseCommand("spin")
	assert.Error(t, err)
	_, err = ParseCommand("none")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, int(numCommands)-1)
	assert.True(t, sort.StringsAreSorted(names))

	for cmd := Clear; cmd < numCommands; cmd++ {
		res, err := ParseCommand(cmd.String())
		require.NoError(t, err, cmd.String())
		assert.Equal(t, cmd, res)
	}
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "Command(200)", Command(200).String())
}

func TestDefaultKeyMap(t *testing.T) {
	seen := map[Command]string{}
	for key, cmd := range DefaultKeyMap() {
		prev, dup := seen[cmd]
		assert.False(t, dup, "%s bound to %q and %q", cmd, key, prev)
		seen[cmd] = key
		assert.NotEqual(t, None, cmd)
	}
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		in   string
		want Step
	}{
		{"blur", Step{Command: Blur}},
		{"g", Step{Command: Gradient}},
		{"rectangle@100,200", Step{
			Command: Rectangle,
			Input: Input{
				Start:   framebuf.Vec(100, 200),
				Pointer: framebuf.Vec(100, 200),
			},
		}},
		{"line@10,10+50,20", Step{
			Command: Line,
			Input: Input{
				Start:   framebuf.Vec(10, 10),
				Pointer: framebuf.Vec(60, 30),
				Delta:   framebuf.Vec(50, 20),
			},
		}},
		{" paint@40, 60+-10,0 ", Step{
			Command: Paint,
			Input: Input{
				Start:   framebuf.Vec(40, 60),
				Pointer: framebuf.Vec(30, 60),
				Delta:   framebuf.Vec(-10, 0),
			},
		}},
	}
	for _, x := range tests {
		t.Run(x.in, func(t *testing.T) {
			step, err := ParseStep(x.in)
			require.NoError(t, err)
			assert.Equal(t, x.want, step)
		})
	}

	t.Run("errors", func(t *testing.T) {
		for _, in := range []string{"spin", "line@10", "line@a,b", "line@1,2+x", "@1,2"} {
			_, err := ParseStep(in)
			assert.Error(t, err, in)
		}
	})
}
