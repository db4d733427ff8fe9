// Package describe turns raw detector output into a natural-language
// accessibility description: pure shaping functions reduce the detector
// results to compact summaries, a prompt builder embeds them in an
// instruction block, and a generator sends that to an OpenAI-compatible
// endpoint with a deterministic fallback when generation is unavailable.
package describe

import (
	"fmt"
	"math"
	"sort"

	"visionvoice-server-go/internal/domain/vision"
)

// Thresholds are the confidence cut-offs applied while shaping. They are
// design constants with documented defaults; tests and config may override.
type Thresholds struct {
	MinLabelConfidence     float64
	MaxLabels              int
	MinAttributeConfidence float64
	MinCelebrityConfidence float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinLabelConfidence:     70,
		MaxLabels:              20,
		MinAttributeConfidence: 80,
		MinCelebrityConfidence: 95,
	}
}

// ShapedFace is one face reduced to prompt-ready fields.
type ShapedFace struct {
	Index      int
	Gender     string
	AgeRange   string
	Emotion    string
	Attributes []string
}

type ShapedLabel struct {
	Name       string
	Confidence int
}

type ShapedCelebrity struct {
	Name       string
	Confidence int
}

// ShapeFaces reduces raw faces to per-person summaries. Returns nil when
// there are no faces. Boolean attributes are kept only when both detected
// and reported with confidence at or above the attribute threshold.
func ShapeFaces(faces []vision.Face, t Thresholds) []ShapedFace {
	if len(faces) == 0 {
		return nil
	}

	shaped := make([]ShapedFace, 0, len(faces))
	for i, face := range faces {
		gender := "Homem"
		if face.Gender == "Female" {
			gender = "Mulher"
		}

		age := "idade desconhecida"
		if face.AgeRange != nil {
			age = fmt.Sprintf("%d-%d anos", face.AgeRange.Low, face.AgeRange.High)
		}

		var attributes []string
		if face.Smile.Value && face.Smile.Confidence >= t.MinAttributeConfidence {
			attributes = append(attributes, "sorrindo")
		}
		if face.Eyeglasses.Value && face.Eyeglasses.Confidence >= t.MinAttributeConfidence {
			attributes = append(attributes, "usando óculos")
		}
		if face.Beard.Value && face.Beard.Confidence >= t.MinAttributeConfidence {
			attributes = append(attributes, "com barba")
		}

		shaped = append(shaped, ShapedFace{
			Index:      i + 1,
			Gender:     gender,
			AgeRange:   age,
			Emotion:    dominantEmotion(face.Emotions),
			Attributes: attributes,
		})
	}
	return shaped
}

// dominantEmotion picks the emotion entry with the maximum confidence; the
// first occurrence wins ties. Empty when the face reports no emotions.
func dominantEmotion(emotions []vision.Emotion) string {
	if len(emotions) == 0 {
		return ""
	}
	best := emotions[0]
	for _, e := range emotions[1:] {
		if e.Confidence > best.Confidence {
			best = e
		}
	}
	return best.Type
}

// ShapeLabels filters labels to the confidence threshold, sorts descending
// by confidence, keeps the top MaxLabels and rounds confidence for display.
func ShapeLabels(labels []vision.Label, t Thresholds) []ShapedLabel {
	var qualified []vision.Label
	for _, l := range labels {
		if l.Confidence >= t.MinLabelConfidence {
			qualified = append(qualified, l)
		}
	}
	if len(qualified) == 0 {
		return nil
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Confidence > qualified[j].Confidence
	})
	if len(qualified) > t.MaxLabels {
		qualified = qualified[:t.MaxLabels]
	}

	shaped := make([]ShapedLabel, 0, len(qualified))
	for _, l := range qualified {
		shaped = append(shaped, ShapedLabel{
			Name:       l.Name,
			Confidence: int(math.Round(l.Confidence)),
		})
	}
	return shaped
}

// ShapeCelebrities keeps only high-confidence matches. Returns nil when
// none qualify.
func ShapeCelebrities(celebrities []vision.Celebrity, t Thresholds) []ShapedCelebrity {
	var shaped []ShapedCelebrity
	for _, c := range celebrities {
		if c.MatchConfidence >= t.MinCelebrityConfidence {
			shaped = append(shaped, ShapedCelebrity{
				Name:       c.Name,
				Confidence: int(math.Round(c.MatchConfidence)),
			})
		}
	}
	return shaped
}
