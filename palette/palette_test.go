package palette

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"framelab/framebuf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwatchNames(t *testing.T) {
	for s := range NumSwatches {
		res, err := ParseSwatch(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, res)
	}

	_, err := ParseSwatch("orange")
	assert.Error(t, err)
	assert.Equal(t, "Swatch(9)", Swatch(9).String())
}

func TestLookup(t *testing.T) {
	set := Default

	for s := range NumSwatches {
		res, ok := set.Lookup(set.Color(s))
		assert.True(t, ok, s.String())
		assert.Equal(t, s, res)
	}

	res, ok := set.Lookup(framebuf.Color{R: 0xFF, A: 0x10})
	assert.True(t, ok)
	assert.Equal(t, Red, res)

	_, ok = set.Lookup(framebuf.Pink)
	assert.False(t, ok)
}

func TestFromPalette(t *testing.T) {
	_, err := FromPalette(color.Palette{color.Black})
	assert.Error(t, err)

	pal := Default.Palette()
	pal = append(pal, color.White)
	set, err := FromPalette(pal)
	require.NoError(t, err)
	assert.Equal(t, Default, set)
}

func TestRIFF(t *testing.T) {
	set := Default
	set[Purple] = framebuf.Color{R: 0x66, G: 0x33, B: 0x99, A: 0xFF}

	var buf bytes.Buffer
	require.NoError(t, set.WriteRIFF(&buf))
	assert.Equal(t, []byte("RIFF"), buf.Bytes()[:4])
	assert.Equal(t, []byte("PAL data"), buf.Bytes()[8:16])

	var res Set
	require.NoError(t, res.ReadRIFF(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, set, res)

	t.Run("several palettes", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := WriteTo(&buf, []color.Palette{
			{color.Black, color.White},
			{color.RGBA{1, 2, 3, 0xFF}},
		})
		require.NoError(t, err)

		pals, err := ReadFrom(&buf)
		require.NoError(t, err)
		require.Len(t, pals, 2)
		assert.Len(t, pals[0], 2)
		assert.Equal(t, color.RGBA{1, 2, 3, 0xFF}, pals[1][0])
	})

	t.Run("not a palette", func(t *testing.T) {
		var res Set
		err := res.ReadRIFF(bytes.NewReader([]byte("RIFF\x04\x00\x00\x00WAVE")))
		assert.Error(t, err)
	})

	t.Run("too few colors", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := WriteTo(&buf, []color.Palette{{color.Black}})
		require.NoError(t, err)

		var res Set
		assert.Error(t, res.ReadRIFF(&buf))
	})
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "toolbar.pal")

	cmd := CLICmd{Out: name, Colors: map[string]string{"cyan": "#088"}}
	require.NoError(t, cmd.Validate(nil))
	require.NoError(t, cmd.Run())

	set, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, framebuf.Color{R: 0, G: 0x88, B: 0x88, A: 0xFF}, set.Color(Cyan))
	assert.Equal(t, Default.Color(Red), set.Color(Red))

	_, err = Load(filepath.Join(t.TempDir(), "missing.pal"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	t.Run("bad swatch", func(t *testing.T) {
		cmd := CLICmd{Out: name, Colors: map[string]string{"orange": "#f80"}}
		assert.Error(t, cmd.Validate(nil))
	})
}
