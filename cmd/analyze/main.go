package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"big5-analyzer/internal/config"
	"big5-analyzer/internal/logging"
	"big5-analyzer/internal/predict"
	"big5-analyzer/internal/service"
	"big5-analyzer/internal/terminal"
	"big5-analyzer/internal/ui"
)

const (
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	text := flag.String("text", "", "text to analyze (skips interactive mode)")
	file := flag.String("file", "", "read the text to analyze from a file ('-' for stdin)")
	format := flag.String("format", "text", "output format: text or json")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	predictor := predict.NewCachingPredictor(
		predict.NewHTTPClient(cfg.PredictBaseURL, cfg.PredictTimeout, logger),
		newCache(ctx, cfg, logger),
		logger,
	)
	analysisSvc := service.NewAnalysisService(predictor, logger)

	input, err := readInput(*text, *file)
	if err != nil {
		log.Fatalf("leer input: %v", err)
	}

	if strings.EqualFold(*format, "json") {
		os.Exit(runJSON(ctx, analysisSvc, input))
	}

	page := terminal.NewPage(os.Stdout, os.Stderr, terminal.Options{
		Color:    !*noColor,
		BarWidth: cfg.BarWidth,
	})
	ctrl, err := ui.NewController(page.Elements(), analysisSvc, logger)
	if err != nil {
		logger.Fatal("controller init", zap.Error(err))
	}

	if input != "" {
		os.Exit(runOnce(ctx, page, ctrl, input))
	}
	runInteractive(ctx, bufio.NewReader(os.Stdin), page, ctrl)
}

func newCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) predict.Cache {
	if cfg.CacheTTL <= 0 {
		return nil
	}
	if cfg.RedisAddr == "" {
		return predict.NewMemoryCache(cfg.CacheTTL)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctxPing).Err(); err != nil {
		logger.Warn("redis ping failed, using in-memory cache", zap.Error(err))
		return predict.NewMemoryCache(cfg.CacheTTL)
	}
	return predict.NewRedisCache(redisClient, cfg.CacheTTL)
}

func readInput(text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	switch file {
	case "":
		return "", nil
	case "-":
		raw, err := io.ReadAll(os.Stdin)
		return string(raw), err
	default:
		raw, err := os.ReadFile(file)
		return string(raw), err
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, service.ErrTextTooShort):
		return exitValidation
	default:
		return exitFailure
	}
}

func runJSON(ctx context.Context, svc *service.AnalysisService, input string) int {
	report, err := svc.Analyze(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrTextTooShort) {
			fmt.Fprintln(os.Stderr, ui.ValidationMessage)
		} else {
			fmt.Fprintln(os.Stderr, ui.FailureMessage)
		}
		return exitCode(err)
	}
	if err := terminal.RenderJSON(os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "escribir json: %v\n", err)
		return exitFailure
	}
	return 0
}

func runOnce(ctx context.Context, page *terminal.Page, ctrl *ui.Controller, input string) int {
	page.Input.Set(input)
	ctrl.OnInput()
	err := ctrl.Submit(ctx)
	ctrl.Settle()
	return exitCode(err)
}

func runInteractive(ctx context.Context, reader *bufio.Reader, page *terminal.Page, ctrl *ui.Controller) {
	fmt.Println("===== Big Five Analyzer =====")
	fmt.Printf("Escribe tu texto (minimo %d caracteres).\n", service.MinTextLength)
	fmt.Println("Linea vacia = analizar | 'limpiar' = borrar texto | 'salir' = terminar")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if strings.TrimSpace(line) != "" {
				page.Input.AppendLine(strings.TrimRight(line, "\r\n"))
				ctrl.OnInput()
			}
			if strings.TrimSpace(page.Input.Value()) != "" {
				_ = ctrl.Submit(ctx)
				ctrl.Settle()
			}
			return
		}
		line = strings.TrimRight(line, "\r\n")

		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "salir", "exit":
			fmt.Println("Saliendo...")
			return
		case "limpiar", "clear":
			page.Input.Reset()
			ctrl.OnInput()
			continue
		case "":
			// El controlador ya mostro el aviso y registro la causa.
			_ = ctrl.Submit(ctx)
			ctrl.Settle()
			if ctx.Err() != nil {
				return
			}
			continue
		}

		page.Input.AppendLine(line)
		ctrl.OnInput()
	}
}
