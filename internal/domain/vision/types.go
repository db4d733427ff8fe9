package vision

// Label is a scene category assigned by the vision service, raw and
// unfiltered. Confidence is 0-100.
type Label struct {
	Name       string
	Confidence float64
}

type AgeRange struct {
	Low  int
	High int
}

type Emotion struct {
	Type       string
	Confidence float64
}

// BoolAttribute is a detected boolean face trait with its own confidence.
type BoolAttribute struct {
	Value      bool
	Confidence float64
}

// Face is the raw per-face detector output.
type Face struct {
	Gender     string
	AgeRange   *AgeRange
	Emotions   []Emotion
	Smile      BoolAttribute
	Eyeglasses BoolAttribute
	Beard      BoolAttribute
}

type Celebrity struct {
	Name            string
	MatchConfidence float64
}

// BestEffort carries the result of an optional detector: either the
// detected items or an explicit unavailable marker when the call failed.
type BestEffort[T any] struct {
	Items     []T
	Available bool
}

// Analysis aggregates the three detector results for one image. It lives
// for the duration of a single request and is never persisted.
type Analysis struct {
	Labels      []Label
	Faces       BestEffort[Face]
	Celebrities BestEffort[Celebrity]
}

// FaceCount returns the number of detected faces, zero when the face
// detector was unavailable.
func (a *Analysis) FaceCount() int {
	return len(a.Faces.Items)
}

func (a *Analysis) LabelCount() int {
	return len(a.Labels)
}
