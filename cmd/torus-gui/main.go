package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/torusview/pkg/geometry"
	"github.com/philipparndt/torusview/pkg/projection"
	"github.com/philipparndt/torusview/pkg/render"
	"github.com/philipparndt/torusview/pkg/scene"
	"github.com/philipparndt/torusview/pkg/viewer"
)

type App struct {
	window     fyne.Window
	controller *controller
	view       *viewer.FrameView
	color      color.RGBA
	swatch     *canvas.Rectangle
	status     *widget.Label

	torusEntries     [4]*widget.Entry
	rotateEntries    [3]*widget.Entry
	scaleEntries     [3]*widget.Entry
	translateEntries [3]*widget.Entry

	projectionSelect *widget.Select
	axonEntries      [3]*widget.Entry
	dEntry           *widget.Entry
	lEntry           *widget.Entry
	alphaEntry       *widget.Entry
	projectionParams *fyne.Container

	viewCheck    *widget.Check
	viewEntries  [3]*widget.Entry
	legacyCheck  *widget.Check
	lightCheck   *widget.Check
	lightEntries [3]*widget.Entry
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-v" {
		scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	a := app.New()
	w := a.NewWindow("Torus Viewer")

	base, _ := scene.ParseColor(scene.DefaultColor)
	appInstance := &App{
		window:     w,
		controller: newController(),
		color:      base,
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1300, 720))
	w.ShowAndRun()
}

func entry(value string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(value)
	return e
}

func vectorEntries(x, y, z string) [3]*widget.Entry {
	return [3]*widget.Entry{entry(x), entry(y), entry(z)}
}

func values(entries ...*widget.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

func row(label string, entries ...*widget.Entry) fyne.CanvasObject {
	objects := []fyne.CanvasObject{widget.NewLabel(label)}
	for _, e := range entries {
		objects = append(objects, e)
	}
	return container.NewGridWithColumns(len(objects), objects...)
}

func (a *App) setupMainUI() {
	d := scene.Default()
	a.torusEntries = [4]*widget.Entry{
		entry(fmt.Sprint(d.Torus.MinorRadius)),
		entry(fmt.Sprint(d.Torus.MinorAngle)),
		entry(fmt.Sprint(d.Torus.MajorRadius)),
		entry(fmt.Sprint(d.Torus.MajorAngle)),
	}
	a.rotateEntries = vectorEntries("0", "0", "0")
	a.scaleEntries = vectorEntries("1", "1", "1")
	a.translateEntries = vectorEntries("0", "0", "0")

	a.axonEntries = vectorEntries("30", "30", "0")
	a.dEntry = entry("300")
	a.lEntry = entry("0.5")
	a.alphaEntry = entry("45")
	a.projectionParams = container.NewVBox()
	a.projectionSelect = widget.NewSelect(projection.Names, func(string) {
		a.updateProjectionParams()
	})

	a.viewCheck = widget.NewCheck("View transformation", nil)
	a.viewEntries = vectorEntries("0", "0", "0")
	a.legacyCheck = widget.NewCheck("Legacy view matrix", nil)
	a.lightCheck = widget.NewCheck("Light", nil)
	a.lightEntries = vectorEntries("0", "0", "0")

	a.swatch = canvas.NewRectangle(a.color)
	a.swatch.SetMinSize(fyne.NewSize(24, 24))
	colorButton := widget.NewButton("Model color", func() {
		picker := dialog.NewColorPicker("Model color", "Pick the facet fill color", func(c color.Color) {
			a.color = color.RGBAModel.Convert(c).(color.RGBA)
			a.swatch.FillColor = a.color
			a.swatch.Refresh()
			a.status.SetText("Model color " + scene.FormatColor(a.color))
		}, a.window)
		picker.Advanced = true
		picker.Show()
	})

	a.status = widget.NewLabel("")
	a.status.Wrapping = fyne.TextWrapWord

	a.view = viewer.NewFrameView(a.controller.camera)
	a.view.SetOnChange(func() {
		if a.controller.model != nil {
			a.draw()
		}
	})

	buttons := container.NewGridWithColumns(3,
		widget.NewButton("Build", a.build),
		widget.NewButton("Rotate", func() { a.transform("rotate", a.rotateEntries) }),
		widget.NewButton("Scale", func() { a.transform("scale", a.scaleEntries) }),
		widget.NewButton("Translate", func() { a.transform("translate", a.translateEntries) }),
		widget.NewButton("Draw", a.draw),
		widget.NewButton("Clear", a.clear),
	)

	form := container.NewVBox(
		widget.NewLabel("Torus:"),
		row("Minor radius", a.torusEntries[0]),
		row("Minor angle", a.torusEntries[1]),
		row("Major radius", a.torusEntries[2]),
		row("Major angle", a.torusEntries[3]),
		widget.NewSeparator(),
		widget.NewLabel("Transforms:"),
		row("Rotate", a.rotateEntries[:]...),
		row("Scale", a.scaleEntries[:]...),
		row("Translate", a.translateEntries[:]...),
		widget.NewSeparator(),
		widget.NewLabel("Projection:"),
		a.projectionSelect,
		a.projectionParams,
		widget.NewSeparator(),
		a.viewCheck,
		row("ρ φ θ", a.viewEntries[:]...),
		a.legacyCheck,
		a.lightCheck,
		row("Light", a.lightEntries[:]...),
		container.NewHBox(colorButton, a.swatch),
		widget.NewSeparator(),
		buttons,
		a.status,
	)
	a.projectionSelect.SetSelected(projection.Axonometric{}.Name())

	formScroll := container.NewVScroll(form)
	formScroll.SetMinSize(fyne.NewSize(420, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		formScroll, // left
		nil,        // right
		a.view,     // center
	)
	a.window.SetContent(content)
}

func (a *App) updateProjectionParams() {
	var objects []fyne.CanvasObject
	switch a.projectionSelect.Selected {
	case projection.Axonometric{}.Name():
		objects = append(objects, row("Rotate", a.axonEntries[:]...))
	case projection.Perspective{}.Name():
		objects = append(objects, row("d", a.dEntry))
	case projection.Oblique{}.Name():
		objects = append(objects, row("l", a.lEntry), row("α", a.alphaEntry))
	}
	a.projectionParams.Objects = objects
	a.projectionParams.Refresh()
}

func (a *App) fail(err error) {
	a.status.SetText(err.Error())
	dialog.ShowError(err, a.window)
}

func (a *App) build() {
	v, err := parseFloats(
		[]string{"minor radius", "minor angle", "major radius", "major angle"},
		values(a.torusEntries[:]...))
	if err != nil {
		a.fail(err)
		return
	}

	err = a.controller.build(scene.Torus{MinorRadius: v[0], MinorAngle: v[1], MajorRadius: v[2], MajorAngle: v[3]})
	if err != nil {
		a.fail(err)
		return
	}
	if err := a.redraw(); err != nil {
		a.fail(err)
		return
	}
	a.status.SetText(fmt.Sprintf("Built torus with %d facets", a.controller.model.FacetCount()))
}

func (a *App) transform(name string, entries [3]*widget.Entry) {
	v, err := parseFloats([]string{name + " x", name + " y", name + " z"}, values(entries[:]...))
	if err != nil {
		a.fail(err)
		return
	}

	var step scene.Transform
	switch name {
	case "rotate":
		step.Rotate = v
	case "scale":
		step.Scale = v
	default:
		step.Translate = v
	}
	if err := a.controller.apply(step); err != nil {
		a.fail(err)
		return
	}
	if err := a.redraw(); err != nil {
		a.fail(err)
		return
	}
	a.status.SetText(fmt.Sprintf("Applied %s %v", name, v))
}

func (a *App) projection() (projection.Projection, error) {
	switch a.projectionSelect.Selected {
	case projection.Axonometric{}.Name():
		v, err := parseFloats([]string{"rotate x", "rotate y", "rotate z"}, values(a.axonEntries[:]...))
		if err != nil {
			return nil, err
		}
		return projection.Axonometric{RX: v[0], RY: v[1], RZ: v[2]}, nil
	case projection.Perspective{}.Name():
		v, err := parseFloats([]string{"d"}, values(a.dEntry))
		if err != nil {
			return nil, err
		}
		return projection.Perspective{D: v[0]}, nil
	case projection.Oblique{}.Name():
		v, err := parseFloats([]string{"l", "alpha"}, values(a.lEntry, a.alphaEntry))
		if err != nil {
			return nil, err
		}
		return projection.Oblique{L: v[0], Alpha: v[1]}, nil
	}
	return projection.Parse(a.projectionSelect.Selected)
}

func (a *App) draw() {
	if err := a.redraw(); err != nil {
		a.fail(err)
		return
	}
	a.status.SetText(fmt.Sprintf("Drew %s projection", a.projectionSelect.Selected))
}

// redraw renders the current model with the form's projection settings
func (a *App) redraw() error {
	p, err := a.projection()
	if err != nil {
		return err
	}

	var view *projection.View
	if a.viewCheck.Checked {
		v, err := parseFloats([]string{"rho", "phi", "theta"}, values(a.viewEntries[:]...))
		if err != nil {
			return err
		}
		view = &projection.View{Rho: v[0], Phi: v[1], Theta: v[2], Legacy: a.legacyCheck.Checked}
	}

	light, err := parseFloats([]string{"light x", "light y", "light z"}, values(a.lightEntries[:]...))
	if err != nil {
		return err
	}

	img, err := a.controller.draw(p, view, render.Options{
		Color: a.color,
		Light: render.Light{
			Enabled:  a.lightCheck.Checked,
			Position: geometry.NewPoint(light[0], light[1], light[2]),
		},
	})
	if err != nil {
		return err
	}
	a.view.SetImage(img)
	return nil
}

func (a *App) clear() {
	a.controller.clear()
	blank := viewer.NewImageCanvas(render.DefaultWidth, render.DefaultHeight)
	blank.Clear()
	a.view.SetImage(blank.Image())
	a.status.SetText("")
}
