// Package status serves the health and capability endpoints.
package status

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"visionvoice-server-go/internal/domain/describe"
	"visionvoice-server-go/internal/platform/config"
	"visionvoice-server-go/internal/platform/logging"
)

// Service answers health checks and reports whether AI description
// generation is active.
type Service struct {
	cfg       *config.Config
	logger    *logging.Logger
	generator *describe.Generator
	startedAt time.Time
}

func NewService(cfg *config.Config, logger *logging.Logger, generator *describe.Generator) *Service {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		generator: generator,
		startedAt: time.Now(),
	}
}

// Register installs the status routes under /api.
func (s *Service) Register(api *gin.RouterGroup) {
	api.GET("/health", s.HandleHealth)
	api.GET("/ia-status", s.HandleIAStatus)
}

// HandleHealth godoc
// @Summary Verifica a saúde do servidor
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (s *Service) HandleHealth(c *gin.Context) {
	payload := gin.H{
		"status":    "ok",
		"uptime":    time.Since(s.startedAt).Seconds(),
		"timestamp": time.Now().Format(time.RFC3339),
		"versao":    s.cfg.Server.Version,
		"runtime": gin.H{
			"goroutines": runtime.NumGoroutine(),
			"go_version": runtime.Version(),
		},
	}
	payload["sistema"] = systemStats()
	c.JSON(http.StatusOK, payload)
}

// HandleIAStatus godoc
// @Summary Informa se a geração de descrições por IA está ativa
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/ia-status [get]
func (s *Service) HandleIAStatus(c *gin.Context) {
	enabled := s.generator != nil && s.generator.Enabled()

	status := "desativada"
	descricao := "Chave da API não configurada; as descrições usam o texto padrão."
	if enabled {
		status = "ativa"
		descricao = "Descrições geradas por IA estão habilitadas."
	}

	model := ""
	if s.generator != nil {
		model = s.generator.Model()
	}

	c.JSON(http.StatusOK, gin.H{
		"iaAtivada": enabled,
		"modelo":    model,
		"provider":  "Groq",
		"status":    status,
		"descricao": descricao,
	})
}

// systemStats gathers best-effort process and memory figures; missing
// values are simply omitted.
func systemStats() gin.H {
	stats := gin.H{}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats["memoria_total_mb"] = vm.Total / 1024 / 1024
		stats["memoria_usada_pct"] = vm.UsedPercent
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if rss, err := proc.MemoryInfo(); err == nil && rss != nil {
			stats["processo_rss_mb"] = rss.RSS / 1024 / 1024
		}
		if cpu, err := proc.CPUPercent(); err == nil {
			stats["processo_cpu_pct"] = cpu
		}
	}

	return stats
}
