// Package rekognition adapts AWS Rekognition to the vision provider
// interface: label detection, face detection with all attributes, and
// celebrity recognition over a single in-memory image payload.
package rekognition

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"visionvoice-server-go/internal/domain/vision"
	"visionvoice-server-go/internal/platform/config"
	platformerrors "visionvoice-server-go/internal/platform/errors"
	"visionvoice-server-go/internal/platform/logging"
)

func init() {
	vision.Register("rekognition", NewProvider)
}

type Provider struct {
	client        *rekognition.Client
	maxLabels     int32
	minConfidence float32
	logger        *logging.Logger
}

func NewProvider(cfg *config.Config, logger *logging.Logger) (vision.Provider, error) {
	if logger == nil {
		logger = logging.DefaultLogger
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindVision, "rekognition.new",
			"failed to load AWS configuration", err)
	}

	return &Provider{
		client:        rekognition.NewFromConfig(awsCfg),
		maxLabels:     cfg.Vision.MaxLabels,
		minConfidence: cfg.Vision.MinLabelConfidence,
		logger:        logger,
	}, nil
}

func (p *Provider) DetectLabels(ctx context.Context, image []byte) ([]vision.Label, error) {
	p.logger.DebugTag("VISION", "detecting labels")

	out, err := p.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &rektypes.Image{Bytes: image},
		MaxLabels:     aws.Int32(p.maxLabels),
		MinConfidence: aws.Float32(p.minConfidence),
	})
	if err != nil {
		return nil, err
	}

	labels := make([]vision.Label, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, vision.Label{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		})
	}
	return labels, nil
}

func (p *Provider) DetectFaces(ctx context.Context, image []byte) ([]vision.Face, error) {
	p.logger.DebugTag("VISION", "detecting faces")

	out, err := p.client.DetectFaces(ctx, &rekognition.DetectFacesInput{
		Image:      &rektypes.Image{Bytes: image},
		Attributes: []rektypes.Attribute{rektypes.AttributeAll},
	})
	if err != nil {
		return nil, err
	}

	faces := make([]vision.Face, 0, len(out.FaceDetails))
	for _, d := range out.FaceDetails {
		faces = append(faces, mapFace(d))
	}
	return faces, nil
}

func (p *Provider) RecognizeCelebrities(ctx context.Context, image []byte) ([]vision.Celebrity, error) {
	p.logger.DebugTag("VISION", "recognizing celebrities")

	out, err := p.client.RecognizeCelebrities(ctx, &rekognition.RecognizeCelebritiesInput{
		Image: &rektypes.Image{Bytes: image},
	})
	if err != nil {
		return nil, err
	}

	celebrities := make([]vision.Celebrity, 0, len(out.CelebrityFaces))
	for _, c := range out.CelebrityFaces {
		celebrities = append(celebrities, vision.Celebrity{
			Name:            aws.ToString(c.Name),
			MatchConfidence: float64(aws.ToFloat32(c.MatchConfidence)),
		})
	}
	return celebrities, nil
}

func mapFace(d rektypes.FaceDetail) vision.Face {
	face := vision.Face{}

	if d.Gender != nil {
		face.Gender = string(d.Gender.Value)
	}
	if d.AgeRange != nil {
		face.AgeRange = &vision.AgeRange{
			Low:  int(aws.ToInt32(d.AgeRange.Low)),
			High: int(aws.ToInt32(d.AgeRange.High)),
		}
	}
	for _, e := range d.Emotions {
		face.Emotions = append(face.Emotions, vision.Emotion{
			Type:       string(e.Type),
			Confidence: float64(aws.ToFloat32(e.Confidence)),
		})
	}
	if d.Smile != nil {
		face.Smile = vision.BoolAttribute{
			Value:      d.Smile.Value,
			Confidence: float64(aws.ToFloat32(d.Smile.Confidence)),
		}
	}
	if d.Eyeglasses != nil {
		face.Eyeglasses = vision.BoolAttribute{
			Value:      d.Eyeglasses.Value,
			Confidence: float64(aws.ToFloat32(d.Eyeglasses.Confidence)),
		}
	}
	if d.Beard != nil {
		face.Beard = vision.BoolAttribute{
			Value:      d.Beard.Value,
			Confidence: float64(aws.ToFloat32(d.Beard.Confidence)),
		}
	}
	return face
}
