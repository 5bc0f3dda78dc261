package models

// AnnotationKind distinguishes drawing marks from text labels on a photo
// overlay.
type AnnotationKind string

const (
	AnnotationDrawing AnnotationKind = "drawing"
	AnnotationText    AnnotationKind = "text"
)

// Annotation is a single mark on a photo overlay. The rendering of marks is
// owned by the UI; the core only persists them in capture order so repeated
// edits before upload reach the remote system as one coalesced payload.
type Annotation struct {
	Kind   AnnotationKind `json:"kind"`
	Points []Point        `json:"points,omitempty"`
	Text   string         `json:"text,omitempty"`
	Color  string         `json:"color,omitempty"`
}

// Point is a normalised coordinate on the photo (0..1 in both axes), so the
// overlay survives display-size changes between devices.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
