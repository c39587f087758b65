package xr

import (
	"github.com/gogpu/xr/runtime"
)

// CompositionLayer is a unit of frame submission.
type CompositionLayer interface {
	// Header returns the native layer to submit.
	Header() runtime.CompositionLayer

	// Swapchains returns every swapchain the layer reads. Nil entries are
	// left out.
	Swapchains() []*Swapchain
}

// SubImage selects a region of a swapchain's acquired image.
type SubImage struct {
	Swapchain  *Swapchain
	Rect       runtime.Rect2Di
	ArrayIndex uint32
}

// FullImage returns the sub-image covering all of sc. A nil sc yields a
// sub-image with no swapchain and an empty rectangle.
func FullImage(sc *Swapchain) SubImage {
	if sc == nil {
		return SubImage{}
	}
	return SubImage{
		Swapchain: sc,
		Rect: runtime.Rect2Di{
			Width:  int32(sc.info.Width),
			Height: int32(sc.info.Height),
		},
	}
}

func (s SubImage) native() runtime.SwapchainSubImage {
	return runtime.SwapchainSubImage{
		Swapchain:  s.Swapchain.Raw(),
		Rect:       s.Rect,
		ArrayIndex: s.ArrayIndex,
	}
}

// ProjectionView is one eye's view of a ProjectionLayer.
type ProjectionView struct {
	Pose     runtime.Posef
	Fov      runtime.Fovf
	SubImage SubImage
}

// ProjectionLayer renders one projection per view.
type ProjectionLayer struct {
	flags runtime.LayerFlags
	space runtime.Space
	views []ProjectionView
}

// NewProjectionLayer returns an empty projection layer.
func NewProjectionLayer() *ProjectionLayer {
	return &ProjectionLayer{}
}

// Flags sets the layer flags.
func (l *ProjectionLayer) Flags(f runtime.LayerFlags) *ProjectionLayer {
	l.flags = f
	return l
}

// Space sets the space the views are posed in.
func (l *ProjectionLayer) Space(s runtime.Space) *ProjectionLayer {
	l.space = s
	return l
}

// Views replaces the layer's views.
func (l *ProjectionLayer) Views(views ...ProjectionView) *ProjectionLayer {
	l.views = append(l.views[:0], views...)
	return l
}

// Header returns the native projection layer.
func (l *ProjectionLayer) Header() runtime.CompositionLayer {
	views := make([]runtime.ProjectionView, len(l.views))
	for i, v := range l.views {
		views[i] = runtime.ProjectionView{
			Pose:     v.Pose,
			Fov:      v.Fov,
			SubImage: v.SubImage.native(),
		}
	}
	return &runtime.ProjectionLayer{Flags: l.flags, Space: l.space, Views: views}
}

// Swapchains returns the swapchain of every view, in view order.
func (l *ProjectionLayer) Swapchains() []*Swapchain {
	out := make([]*Swapchain, 0, len(l.views))
	for _, v := range l.views {
		if v.SubImage.Swapchain != nil {
			out = append(out, v.SubImage.Swapchain)
		}
	}
	return out
}

// QuadLayer is a flat rectangle placed in a space.
type QuadLayer struct {
	flags      runtime.LayerFlags
	space      runtime.Space
	visibility runtime.EyeVisibility
	subImage   SubImage
	pose       runtime.Posef
	size       runtime.Extent2Df
}

// NewQuadLayer returns a quad showing sub, visible to both eyes with the
// identity pose.
func NewQuadLayer(sub SubImage) *QuadLayer {
	return &QuadLayer{subImage: sub, pose: runtime.IdentityPose}
}

// Flags sets the layer flags.
func (l *QuadLayer) Flags(f runtime.LayerFlags) *QuadLayer {
	l.flags = f
	return l
}

// Space sets the space the quad is posed in.
func (l *QuadLayer) Space(s runtime.Space) *QuadLayer {
	l.space = s
	return l
}

// EyeVisibility restricts the quad to one eye.
func (l *QuadLayer) EyeVisibility(v runtime.EyeVisibility) *QuadLayer {
	l.visibility = v
	return l
}

// Pose sets the quad's center pose.
func (l *QuadLayer) Pose(p runtime.Posef) *QuadLayer {
	l.pose = p
	return l
}

// Size sets the quad's size in meters.
func (l *QuadLayer) Size(width, height float32) *QuadLayer {
	l.size = runtime.Extent2Df{Width: width, Height: height}
	return l
}

// Header returns the native quad layer.
func (l *QuadLayer) Header() runtime.CompositionLayer {
	return &runtime.QuadLayer{
		Flags:         l.flags,
		Space:         l.space,
		EyeVisibility: l.visibility,
		SubImage:      l.subImage.native(),
		Pose:          l.pose,
		Size:          l.size,
	}
}

// Swapchains returns the quad's swapchain.
func (l *QuadLayer) Swapchains() []*Swapchain {
	if l.subImage.Swapchain == nil {
		return nil
	}
	return []*Swapchain{l.subImage.Swapchain}
}
