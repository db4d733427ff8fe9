// @title VisionVoice API
// @version 2.0
// @description Serviço de acessibilidade: analisa imagens, gera descrições em português e sintetiza o áudio correspondente.
// @host localhost:3000
// @BasePath /api
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"visionvoice-server-go/internal/bootstrap"
)

func main() {
	fmt.Printf("[%s] [INFO] [BOOT] starting visionvoice-server...\n", time.Now().Format("2006-01-02 15:04:05.000"))
	if err := bootstrap.Run(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "visionvoice-server failed: %v\n", err)
		os.Exit(1)
	}
}
