package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/torusview/pkg/render"
)

// FrameView shows rendered frames and turns drag and scroll gestures into
// camera changes
type FrameView struct {
	widget.BaseWidget
	camera   *Camera
	image    *canvas.Image
	onChange func()
}

// NewFrameView creates a new frame view
func NewFrameView(camera *Camera) *FrameView {
	blank := image.NewRGBA(image.Rect(0, 0, render.DefaultWidth, render.DefaultHeight))
	img := canvas.NewImageFromImage(blank)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleFastest

	v := &FrameView{camera: camera, image: img}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback run after the camera moved
func (v *FrameView) SetOnChange(callback func()) {
	v.onChange = callback
}

// SetImage replaces the displayed frame
func (v *FrameView) SetImage(img image.Image) {
	v.image.Image = img
	v.image.Refresh()
}

// Dragged handles mouse drag events for rotation
func (v *FrameView) Dragged(event *fyne.DragEvent) {
	v.camera.Rotate(float64(event.Dragged.DX), float64(event.Dragged.DY))
	v.changed()
}

// DragEnd handles the end of a drag event
func (v *FrameView) DragEnd() {}

// Scrolled handles scroll events for zooming
func (v *FrameView) Scrolled(event *fyne.ScrollEvent) {
	v.camera.ZoomBy(float64(event.Scrolled.DY) * 0.001)
	v.changed()
}

func (v *FrameView) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}

// CreateRenderer creates the renderer for the widget
func (v *FrameView) CreateRenderer() fyne.WidgetRenderer {
	return &frameViewRenderer{view: v}
}

// frameViewRenderer implements fyne.WidgetRenderer
type frameViewRenderer struct {
	view *FrameView
}

func (r *frameViewRenderer) Layout(size fyne.Size) {
	r.view.image.Resize(size)
}

func (r *frameViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(render.DefaultWidth/2, render.DefaultHeight/2)
}

func (r *frameViewRenderer) Refresh() {
	r.view.image.Refresh()
}

func (r *frameViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *frameViewRenderer) Destroy() {}
