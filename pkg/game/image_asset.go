package game

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageAsset is a one-shot future for an image that is decoded in the background.
//
// The frame loop polls Ready() instead of blocking: while the decode is in
// flight, or if it failed, Ready() reports false and Image() returns nil.
// A failed asset stays not-ready forever; callers simply skip drawing it.
//
// The decoded image is converted to an *ebiten.Image lazily on the first
// successful Ready() call, which happens on the game goroutine.
type ImageAsset struct {
	path string
	done chan struct{}

	decoded image.Image
	err     error

	convertOnce sync.Once
	img         *ebiten.Image
}

func newImageAsset(path string) *ImageAsset {
	return &ImageAsset{path: path, done: make(chan struct{})}
}

// NewReadyImageAsset wraps an already available image.
func NewReadyImageAsset(img *ebiten.Image) *ImageAsset {
	a := newImageAsset("")
	a.img = img
	a.convertOnce.Do(func() {})
	close(a.done)
	return a
}

// NewFailedImageAsset returns an asset that will never become ready.
func NewFailedImageAsset(path string, err error) *ImageAsset {
	a := newImageAsset(path)
	a.resolve(nil, err)
	return a
}

// resolve publishes the decode result. Must be called exactly once.
func (a *ImageAsset) resolve(img image.Image, err error) {
	if err == nil && img == nil {
		err = errors.New("no image decoded")
	}
	a.decoded = img
	a.err = err
	close(a.done)
}

// Path returns the resource path this asset was loaded from.
func (a *ImageAsset) Path() string {
	return a.path
}

// Done reports whether loading has finished, successfully or not.
func (a *ImageAsset) Done() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

// Err returns the load error, or nil while loading or on success.
func (a *ImageAsset) Err() error {
	if !a.Done() {
		return nil
	}
	return a.err
}

// Ready reports whether the image has loaded successfully and can be drawn.
func (a *ImageAsset) Ready() bool {
	if !a.Done() || a.err != nil {
		return false
	}
	a.convertOnce.Do(func() {
		a.img = ebiten.NewImageFromImage(a.decoded)
		a.decoded = nil
	})
	return true
}

// Image returns the loaded image, or nil if it is not ready.
func (a *ImageAsset) Image() *ebiten.Image {
	if !a.Ready() {
		return nil
	}
	return a.img
}

// Wait blocks until loading finishes or ctx is cancelled.
// It returns the load error, if any.
func (a *ImageAsset) Wait(ctx context.Context) error {
	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
