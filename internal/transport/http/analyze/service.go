// Package analyze exposes the image analysis endpoints: upload an image,
// run the vision detectors, generate the description and synthesize it.
package analyze

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"visionvoice-server-go/internal/domain/describe"
	"visionvoice-server-go/internal/domain/eventbus"
	imagevalidate "visionvoice-server-go/internal/domain/image"
	"visionvoice-server-go/internal/domain/speech"
	"visionvoice-server-go/internal/domain/vision"
	"visionvoice-server-go/internal/platform/config"
	platformerrors "visionvoice-server-go/internal/platform/errors"
	"visionvoice-server-go/internal/platform/logging"
	httptransport "visionvoice-server-go/internal/transport/http"
)

const processErrorMessage = "Erro ao processar imagem"

// Service orchestrates the full pipeline for one upload.
type Service struct {
	cfg       *config.Config
	logger    *logging.Logger
	analyzer  *vision.Analyzer
	generator *describe.Generator
	speech    speech.Provider
}

func NewService(cfg *config.Config, logger *logging.Logger, analyzer *vision.Analyzer, generator *describe.Generator, speechProvider speech.Provider) *Service {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		analyzer:  analyzer,
		generator: generator,
		speech:    speechProvider,
	}
}

// Register installs the analysis routes. The legacy /analisar route lives
// at the root; the same handler also answers under /api.
func (s *Service) Register(engine *gin.Engine, api *gin.RouterGroup) {
	engine.POST("/analisar", s.HandleProcessImage)
	api.POST("/process-image", s.HandleProcessImage)
}

// HandleProcessImage godoc
// @Summary Analisa uma imagem e devolve descrição acessível com áudio
// @Description Recebe uma imagem multipart, detecta rótulos, rostos e celebridades, gera uma descrição em português e sintetiza o áudio correspondente.
// @Tags analyze
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagem a analisar (máx. 5MB)"
// @Param voice formData string false "Voz para a síntese de fala"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/process-image [post]
func (s *Service) HandleProcessImage(c *gin.Context) {
	requestID := httptransport.RequestID(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httptransport.RespondClientError(c, "Nenhuma imagem enviada")
		return
	}
	if fileHeader.Size > s.cfg.Web.MaxUploadBytes {
		httptransport.RespondClientError(c, oversizeMessage(s.cfg.Web.MaxUploadBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httptransport.RespondServerError(c, processErrorMessage, platformerrors.Detail(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httptransport.RespondServerError(c, processErrorMessage, platformerrors.Detail(err))
		return
	}

	format, err := imagevalidate.Validate(data, s.cfg.Web.MaxUploadBytes)
	if err != nil {
		httptransport.RespondClientError(c, platformerrors.ClientMessage(err))
		return
	}

	voice := c.PostForm("voice")
	if voice == "" {
		voice = c.PostForm("voiceId")
	}
	if voice == "" {
		voice = s.cfg.Speech.DefaultVoice
	}

	s.logger.InfoTag("HTTP", "processing upload: request=%s format=%s size=%dB voice=%s",
		requestID, format, len(data), voice)

	analysis, err := s.analyzer.Analyze(c.Request.Context(), data)
	if err != nil {
		s.logger.ErrorTag("VISION", "analysis failed: request=%s %v", requestID, err)
		httptransport.RespondServerError(c, processErrorMessage, platformerrors.Detail(err))
		return
	}
	eventbus.Publish(eventbus.EventVisionAnalyzed, eventbus.VisionEventData{
		RequestID:  requestID,
		ImageBytes: len(data),
		Labels:     analysis.LabelCount(),
		Faces:      analysis.FaceCount(),
	})

	description := s.generator.Describe(c.Request.Context(), analysis)
	eventbus.Publish(eventbus.EventDescriptionGenerated, eventbus.DescriptionEventData{
		RequestID:   requestID,
		Description: description,
		Generated:   s.generator.Enabled(),
	})

	audio, err := s.speech.Synthesize(c.Request.Context(), description, voice)
	if err != nil {
		s.logger.ErrorTag("TTS", "synthesis failed: request=%s %v", requestID, err)
		httptransport.RespondServerError(c, processErrorMessage, platformerrors.Detail(err))
		return
	}
	eventbus.Publish(eventbus.EventSpeechSynthesized, eventbus.SpeechEventData{
		RequestID:  requestID,
		Voice:      voice,
		AudioBytes: len(audio.Audio),
	})

	c.JSON(http.StatusOK, Response{
		Descricao:   description,
		AudioBase64: audio.Base64,
		Audio:       audio.DataURL,
		Metadata: Metadata{
			TamanhoImagem:    len(data),
			TamanhoAudio:     len(audio.Audio),
			DuracaoAudio:     audio.DurationSeconds,
			Voz:              voice,
			LabelsDetectados: analysis.LabelCount(),
			FacesDetectadas:  analysis.FaceCount(),
		},
	})
}

func oversizeMessage(maxBytes int64) string {
	mb := maxBytes / 1024 / 1024
	if mb <= 0 {
		mb = 1
	}
	return fmt.Sprintf("Imagem muito grande. Máximo %dMB.", mb)
}
