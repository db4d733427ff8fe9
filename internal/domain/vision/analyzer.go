package vision

import (
	"context"

	"golang.org/x/sync/errgroup"

	platformerrors "visionvoice-server-go/internal/platform/errors"
	"visionvoice-server-go/internal/platform/logging"
)

// Analyzer runs the three detector calls for one image. Label detection is
// required and fails the analysis; face and celebrity detection are
// best-effort and degrade to an empty, unavailable result.
type Analyzer struct {
	provider Provider
	logger   *logging.Logger
}

func NewAnalyzer(provider Provider, logger *logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &Analyzer{provider: provider, logger: logger}
}

// Analyze performs the detector calls concurrently. The calls are
// read-only and mutually unrelated, so no ordering is needed; a label
// detection failure cancels the siblings through the group context.
func (a *Analyzer) Analyze(ctx context.Context, image []byte) (*Analysis, error) {
	analysis := &Analysis{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		labels, err := a.provider.DetectLabels(gctx, image)
		if err != nil {
			return platformerrors.Wrap(platformerrors.KindVision, "detect_labels",
				"label detection failed", err)
		}
		analysis.Labels = labels
		return nil
	})

	g.Go(func() error {
		faces, err := a.provider.DetectFaces(gctx, image)
		if err != nil {
			a.logger.WarnTag("VISION", "face detection unavailable: %v", err)
			analysis.Faces = BestEffort[Face]{}
			return nil
		}
		analysis.Faces = BestEffort[Face]{Items: faces, Available: true}
		return nil
	})

	g.Go(func() error {
		celebrities, err := a.provider.RecognizeCelebrities(gctx, image)
		if err != nil {
			a.logger.WarnTag("VISION", "celebrity recognition unavailable: %v", err)
			analysis.Celebrities = BestEffort[Celebrity]{}
			return nil
		}
		analysis.Celebrities = BestEffort[Celebrity]{Items: celebrities, Available: true}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.DebugTag("VISION", "analysis complete: %d labels, %d faces, %d celebrities",
		len(analysis.Labels), len(analysis.Faces.Items), len(analysis.Celebrities.Items))
	return analysis, nil
}
