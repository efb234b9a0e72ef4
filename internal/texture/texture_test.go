package texture

import (
	"testing"

	"github.com/matjam/slidepager/internal/gles"
	"github.com/matjam/slidepager/internal/gles/glestest"
	"github.com/matjam/slidepager/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, v byte) types.ImageBuffer {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = v
	}
	return types.ImageBuffer{Width: w, Height: h, Pix: pix}
}

func TestSetup(t *testing.T) {
	gl := glestest.New()
	u := NewUploader(gl)

	tex, err := u.Setup()
	require.NoError(t, err)
	assert.Equal(t, tex, gl.BoundTexture())
	assert.Equal(t, int32(gles.ClampToEdge), gl.TexParams[gles.TextureWrapS])
	assert.Equal(t, int32(gles.ClampToEdge), gl.TexParams[gles.TextureWrapT])
	assert.Equal(t, int32(gles.Nearest), gl.TexParams[gles.TextureMinFilter])
	assert.Equal(t, int32(gles.Nearest), gl.TexParams[gles.TextureMagFilter])
	assert.Equal(t, int32(1), gl.PixelStore[gles.UnpackAlignment])

	again, err := u.Setup()
	require.NoError(t, err)
	assert.Equal(t, tex, again)
	assert.Equal(t, 1, gl.TexturesCreated)
}

func TestUploadReusesTexture(t *testing.T) {
	gl := glestest.New()
	u := NewUploader(gl)
	tex, err := u.Setup()
	require.NoError(t, err)

	require.NoError(t, u.Upload(solid(3, 2, 0x11)))
	require.NoError(t, u.Upload(solid(5, 5, 0x22)))

	assert.Equal(t, 1, gl.TexturesCreated)
	require.Len(t, gl.Uploads, 2)
	for _, up := range gl.Uploads {
		assert.Equal(t, tex, up.Texture)
		assert.Equal(t, gles.RGBA, up.Format)
		assert.Equal(t, gles.UnsignedByte, up.Type)
	}
	assert.Equal(t, int32(3), gl.Uploads[0].Width)
	assert.Equal(t, int32(2), gl.Uploads[0].Height)
	assert.Equal(t, byte(0x22), gl.Uploads[1].Pixels[0])
	assert.Len(t, gl.Uploads[1].Pixels, 5*5*4)
}

func TestUploadCopiesPixels(t *testing.T) {
	gl := glestest.New()
	u := NewUploader(gl)
	_, err := u.Setup()
	require.NoError(t, err)

	img := solid(2, 2, 0x7f)
	require.NoError(t, u.Upload(img))

	img.Pix[0] = 0
	assert.Equal(t, byte(0x7f), u.staging[0])
}

func TestUploadRejectsBadBuffers(t *testing.T) {
	gl := glestest.New()
	u := NewUploader(gl)

	assert.Error(t, u.Upload(solid(1, 1, 0)), "upload before setup")

	_, err := u.Setup()
	require.NoError(t, err)
	assert.Error(t, u.Upload(types.ImageBuffer{Width: 2, Height: 2, Pix: make([]byte, 15)}))
	assert.Error(t, u.Upload(types.ImageBuffer{}))
	assert.Empty(t, gl.Uploads)

	u.Release()
	assert.Zero(t, u.ID())
	assert.Empty(t, gl.Textures)
}
