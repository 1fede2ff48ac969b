package graphics

import "fmt"

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Describe returns one deterministic line per recorded operation. Two display
// lists with equal Describe output painted the same thing.
func (d *DisplayList) Describe() []string {
	out := make([]string, len(d.ops))
	for i, op := range d.ops {
		out[i] = op.describe()
	}
	return out
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
	describe() string
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(opClipRect{rect: rect})
}

func (c *recordingCanvas) ClipRRect(rrect RRect) {
	c.recorder.append(opClipRRect{rrect: rrect})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(opRRect{rrect: rrect, paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(opLine{start: start, end: end, paint: paint})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	c.recorder.append(opText{layout: layout, position: position})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) { canvas.Save() }
func (opSave) describe() string      { return "save" }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) { canvas.Restore() }
func (opRestore) describe() string      { return "restore" }

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) { canvas.Translate(op.dx, op.dy) }
func (op opTranslate) describe() string {
	return fmt.Sprintf("translate %.1f,%.1f", op.dx, op.dy)
}

type opClipRect struct {
	rect Rect
}

func (op opClipRect) execute(canvas Canvas) { canvas.ClipRect(op.rect) }
func (op opClipRect) describe() string {
	return fmt.Sprintf("clipRect %s", describeRect(op.rect))
}

type opClipRRect struct {
	rrect RRect
}

func (op opClipRRect) execute(canvas Canvas) { canvas.ClipRRect(op.rrect) }
func (op opClipRRect) describe() string {
	return fmt.Sprintf("clipRRect %s r=%.1f", describeRect(op.rrect.Rect), op.rrect.UniformRadius())
}

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) { canvas.Clear(op.color) }
func (op opClear) describe() string {
	return fmt.Sprintf("clear #%08X", uint32(op.color))
}

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) { canvas.DrawRect(op.rect, op.paint) }
func (op opRect) describe() string {
	return fmt.Sprintf("rect %s #%08X %s", describeRect(op.rect), uint32(op.paint.Color), op.paint.Style)
}

type opRRect struct {
	rrect RRect
	paint Paint
}

func (op opRRect) execute(canvas Canvas) { canvas.DrawRRect(op.rrect, op.paint) }
func (op opRRect) describe() string {
	return fmt.Sprintf("rrect %s r=%.1f #%08X %s",
		describeRect(op.rrect.Rect), op.rrect.UniformRadius(), uint32(op.paint.Color), op.paint.Style)
}

type opLine struct {
	start, end Offset
	paint      Paint
}

func (op opLine) execute(canvas Canvas) { canvas.DrawLine(op.start, op.end, op.paint) }
func (op opLine) describe() string {
	return fmt.Sprintf("line %.1f,%.1f-%.1f,%.1f #%08X",
		op.start.X, op.start.Y, op.end.X, op.end.Y, uint32(op.paint.Color))
}

type opText struct {
	layout   *TextLayout
	position Offset
}

func (op opText) execute(canvas Canvas) { canvas.DrawText(op.layout, op.position) }
func (op opText) describe() string {
	return fmt.Sprintf("text %q %.1f,%.1f #%08X",
		op.layout.Text, op.position.X, op.position.Y, uint32(op.layout.Style.Color))
}

func describeRect(r Rect) string {
	return fmt.Sprintf("%.1f,%.1f,%.1f,%.1f", r.Left, r.Top, r.Right, r.Bottom)
}
