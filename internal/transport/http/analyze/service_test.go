package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"visionvoice-server-go/internal/domain/describe"
	"visionvoice-server-go/internal/domain/speech"
	"visionvoice-server-go/internal/domain/vision"
	"visionvoice-server-go/internal/platform/config"
	httptransport "visionvoice-server-go/internal/transport/http"
)

type stubVision struct {
	labels      []vision.Label
	faces       []vision.Face
	celebrities []vision.Celebrity
	labelsErr   error
}

func (s *stubVision) DetectLabels(ctx context.Context, image []byte) ([]vision.Label, error) {
	return s.labels, s.labelsErr
}

func (s *stubVision) DetectFaces(ctx context.Context, image []byte) ([]vision.Face, error) {
	return s.faces, nil
}

func (s *stubVision) RecognizeCelebrities(ctx context.Context, image []byte) ([]vision.Celebrity, error) {
	return s.celebrities, nil
}

type stubSpeech struct {
	lastText  string
	lastVoice string
	err       error
}

func (s *stubSpeech) Synthesize(ctx context.Context, text, voice string) (*speech.Result, error) {
	s.lastText = text
	s.lastVoice = voice
	if s.err != nil {
		return nil, s.err
	}
	return speech.NewResult([]byte("not-really-mp3")), nil
}

func newTestServer(t *testing.T, provider vision.Provider, tts speech.Provider) *gin.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Web.StaticDir = t.TempDir()

	router, err := httptransport.Build(httptransport.Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}

	analyzer := vision.NewAnalyzer(provider, nil)
	generator := describe.NewGenerator(cfg.Describe, describe.DefaultThresholds(), nil)
	svc := NewService(cfg, nil, analyzer, generator, tts)
	svc.Register(router.Engine, router.API)
	return router.Engine
}

func multipartImage(t *testing.T, field string, payload []byte, voice string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, "upload.png")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatal(err)
		}
	}
	if voice != "" {
		if err := writer.WriteField("voice", voice); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, writer.FormDataContentType()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestHandleProcessImage_AnimalScene(t *testing.T) {
	provider := &stubVision{
		labels: []vision.Label{
			{Name: "Dog", Confidence: 98.2},
			{Name: "Golden Retriever", Confidence: 95.1},
			{Name: "Outdoor", Confidence: 88.0},
			{Name: "Grass", Confidence: 76.4},
		},
	}
	tts := &stubSpeech{}
	engine := newTestServer(t, provider, tts)

	body, contentType := multipartImage(t, "image", pngBytes(t), "")
	req := httptest.NewRequest(http.MethodPost, "/api/process-image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Descricao == "" {
		t.Error("descricao should never be empty")
	}
	if resp.AudioBase64 == "" {
		t.Error("audioBase64 missing")
	}
	if !strings.HasPrefix(resp.Audio, "data:audio/mpeg;base64,") {
		t.Errorf("audio = %q, want data URL", resp.Audio)
	}
	if resp.Metadata.LabelsDetectados != 4 {
		t.Errorf("labelsDetectados = %d, want 4", resp.Metadata.LabelsDetectados)
	}
	if resp.Metadata.FacesDetectadas != 0 {
		t.Errorf("facesDetectadas = %d, want 0", resp.Metadata.FacesDetectadas)
	}
	if resp.Metadata.Voz != config.DefaultVoice {
		t.Errorf("voz = %q, want %q", resp.Metadata.Voz, config.DefaultVoice)
	}
	if tts.lastText != resp.Descricao {
		t.Errorf("synthesized %q, response says %q", tts.lastText, resp.Descricao)
	}
}

func TestHandleProcessImage_MissingImage(t *testing.T) {
	engine := newTestServer(t, &stubVision{}, &stubSpeech{})

	body, contentType := multipartImage(t, "", nil, "")
	req := httptest.NewRequest(http.MethodPost, "/analisar", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Nenhuma imagem enviada"}` {
		t.Errorf("body = %s", got)
	}
}

func TestHandleProcessImage_TooLarge(t *testing.T) {
	engine := newTestServer(t, &stubVision{}, &stubSpeech{})

	oversized := make([]byte, 6*1024*1024)
	body, contentType := multipartImage(t, "image", oversized, "")
	req := httptest.NewRequest(http.MethodPost, "/api/process-image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Máximo 5MB") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestHandleProcessImage_FallbackWithFaces(t *testing.T) {
	provider := &stubVision{
		labels: []vision.Label{{Name: "Person", Confidence: 99.0}},
		faces:  []vision.Face{{Gender: "Female"}, {Gender: "Male"}},
	}
	engine := newTestServer(t, provider, &stubSpeech{})

	body, contentType := multipartImage(t, "image", pngBytes(t), "Vitoria")
	req := httptest.NewRequest(http.MethodPost, "/api/process-image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Descricao != "A imagem mostra 2 pessoa(s)." {
		t.Errorf("descricao = %q", resp.Descricao)
	}
	if resp.Metadata.FacesDetectadas != 2 {
		t.Errorf("facesDetectadas = %d, want 2", resp.Metadata.FacesDetectadas)
	}
	if resp.Metadata.Voz != "Vitoria" {
		t.Errorf("voz = %q, want Vitoria", resp.Metadata.Voz)
	}
}

func TestHandleProcessImage_VisionFailure(t *testing.T) {
	provider := &stubVision{labelsErr: context.DeadlineExceeded}
	engine := newTestServer(t, provider, &stubSpeech{})

	body, contentType := multipartImage(t, "image", pngBytes(t), "")
	req := httptest.NewRequest(http.MethodPost, "/api/process-image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Erro ao processar imagem") {
		t.Errorf("body = %s", w.Body.String())
	}
}
