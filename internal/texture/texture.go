package texture

import (
	"fmt"

	"github.com/matjam/slidepager/internal/gles"
	"github.com/matjam/slidepager/internal/types"
)

// Uploader owns the single 2D texture both slide images are drawn from.
// Each upload overwrites the texture's contents; the object itself lives
// until Release.
type Uploader struct {
	gl      gles.Context
	id      uint32
	staging []byte
}

func NewUploader(gl gles.Context) *Uploader {
	return &Uploader{gl: gl}
}

// Setup creates and binds the texture and sets the sampling state: clamp to
// edge on both axes, nearest filtering, byte-aligned unpacking. Calling it
// again returns the existing texture.
func (u *Uploader) Setup() (uint32, error) {
	if u.id != 0 {
		return u.id, nil
	}

	tex := u.gl.CreateTexture()
	if tex == 0 {
		return 0, fmt.Errorf("unable to create texture object")
	}
	u.gl.ActiveTexture(gles.Texture0)
	u.gl.BindTexture(gles.Texture2D, tex)

	u.gl.TexParameteri(gles.Texture2D, gles.TextureWrapS, int32(gles.ClampToEdge))
	u.gl.TexParameteri(gles.Texture2D, gles.TextureWrapT, int32(gles.ClampToEdge))
	u.gl.TexParameteri(gles.Texture2D, gles.TextureMinFilter, int32(gles.Nearest))
	u.gl.TexParameteri(gles.Texture2D, gles.TextureMagFilter, int32(gles.Nearest))

	u.gl.PixelStorei(gles.UnpackAlignment, 1)

	u.id = tex
	return tex, nil
}

// ID returns the texture handle, or 0 before Setup.
func (u *Uploader) ID() uint32 {
	return u.id
}

// Upload replaces the contents of the texture with img.
func (u *Uploader) Upload(img types.ImageBuffer) error {
	if u.id == 0 {
		return fmt.Errorf("texture not set up")
	}
	if err := img.Validate(); err != nil {
		return err
	}

	// GL reads from our own staging copy, never from the caller's slice.
	if cap(u.staging) < len(img.Pix) {
		u.staging = make([]byte, len(img.Pix))
	}
	u.staging = u.staging[:len(img.Pix)]
	copy(u.staging, img.Pix)

	u.gl.BindTexture(gles.Texture2D, u.id)
	u.gl.TexImage2D(gles.Texture2D, 0,
		int32(img.Width), int32(img.Height),
		gles.RGBA, gles.UnsignedByte, u.staging)
	return nil
}

func (u *Uploader) Release() {
	if u.id != 0 {
		u.gl.DeleteTexture(u.id)
		u.id = 0
	}
	u.staging = nil
}
