// Command import-users bulk creates users from a JSON-lines file. Each line
// holds {"email","age","password","first_name","last_name"}. Lines are
// dispatched to sharded workers so duplicates of one email are handled in file
// order.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/app"
	"github.com/99minutos/identity-service/internal/core/ports"
	"github.com/99minutos/identity-service/internal/infrastructure/config"
	"github.com/99minutos/identity-service/internal/infrastructure/queue"
	"github.com/99minutos/identity-service/pkg/logger"
)

// maxLine bounds a single input record.
const maxLine = 1 << 20

type importRecord struct {
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func main() {
	file := flag.String("file", "-", "JSON-lines input, - for stdin")
	workers := flag.Int("workers", 8, "number of sharded workers")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment(), Service: "import-users"})

	in := io.Reader(os.Stdin)
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("open input")
		}
		defer f.Close()
		in = f
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.Close(closeCtx)
	}()

	d := queue.NewDispatcher(*workers, a.Create, log.With().Str("component", "import").Logger())
	d.Start(ctx)

	started := time.Now()
	malformed, feedErr := feed(ctx, in, d, log)
	summary := d.Close()

	log.Info().
		Int("created", summary.Created).
		Int("already_exists", summary.AlreadyExists).
		Int("invalid_data", summary.InvalidData).
		Int("unknown", summary.Unknown).
		Int("malformed", malformed).
		Dur("elapsed", time.Since(started)).
		Msg("import finished")

	if feedErr != nil {
		log.Error().Err(feedErr).Msg("import aborted")
		os.Exit(1)
	}
	if summary.Unknown > 0 {
		os.Exit(2)
	}
}

// feed decodes r line by line and enqueues every record. Blank lines are
// skipped; lines that are not valid JSON are logged and counted.
func feed(ctx context.Context, r io.Reader, d *queue.Dispatcher, log zerolog.Logger) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	malformed := 0
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var rec importRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			malformed++
			log.Warn().Err(err).Int("line", line).Msg("skipping malformed record")
			continue
		}

		job := queue.Job{Line: line, Command: ports.CreateUserCommand{
			Email:       rec.Email,
			Age:         rec.Age,
			RawPassword: rec.Password,
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
		}}
		if err := d.Enqueue(ctx, job); err != nil {
			return malformed, err
		}
	}
	if err := scanner.Err(); err != nil {
		return malformed, fmt.Errorf("read input: %w", err)
	}
	return malformed, nil
}
