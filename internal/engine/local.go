package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Config configures the local runtime client.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns client defaults for a llama.cpp-style server on
// localhost.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://127.0.0.1:8080",
		Model:   "phi-3.5-mini-instruct-q4",
		Timeout: 2 * time.Minute,
	}
}

// statusTimeout bounds the health probe so Status stays cheap enough to be
// polled a few times per second.
const statusTimeout = 250 * time.Millisecond

// Local is an Engine backed by a local inference server speaking the
// OpenAI-compatible chat completions API.
type Local struct {
	baseURL     string
	model       string
	httpClient  *http.Client
	logger      *zap.Logger
	accelerated bool

	mu      sync.Mutex
	started bool
	last    Status
}

// NewLocal creates a client for the local runtime.
func NewLocal(cfg Config, logger *zap.Logger) *Local {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Local{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
		accelerated: detectAccelerator(),
		last:        Status{Message: "not initialized"},
	}
}

// Init probes the runtime and verifies the configured model is served.
// Calling it when already initialized is a no-op.
func (e *Local) Init(ctx context.Context) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return nil
	}
	e.started = true
	e.mu.Unlock()

	e.logger.Info("initializing local engine",
		zap.String("base_url", e.baseURL),
		zap.String("model", e.model),
		zap.Bool("accelerated", e.accelerated))

	// Best effort: a mismatch or an unreachable runtime is reflected in
	// Status, not treated as a hard failure here. The model may still be
	// loading.
	if served, err := e.servedModels(ctx); err == nil {
		found := false
		for _, id := range served {
			if id == e.model {
				found = true
				break
			}
		}
		if !found {
			e.logger.Warn("configured model not reported by runtime",
				zap.String("model", e.model), zap.Strings("served", served))
		}
	}

	e.refreshStatus(ctx)
	return ctx.Err()
}

// Status samples the runtime's health endpoint. Safe to call at any time;
// an unreachable runtime yields a not-ready status rather than an error.
func (e *Local) Status() Status {
	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()
	e.refreshStatus(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Accelerated reports whether a supported hardware accelerator was
// detected on this machine.
func (e *Local) Accelerated() bool {
	return e.accelerated
}

// Complete sends a system/user instruction pair and returns the raw model
// text. It fails with ErrNotReady before the runtime reports ready and is
// never retried automatically.
func (e *Local) Complete(ctx context.Context, system, user string) (string, error) {
	if !e.Status().Ready {
		return "", ErrNotReady
	}

	// Apply the client timeout when the caller did not set a deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.httpClient.Timeout)
		defer cancel()
	}

	start := time.Now()
	reqBody := chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
		Stream:      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.baseURL+"/v1/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", ErrNotReady
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("runtime returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("runtime error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("runtime returned no completion")
	}

	e.logger.Debug("completion finished",
		zap.Duration("took", time.Since(start)),
		zap.Int("system_len", len(system)),
		zap.Int("user_len", len(user)))

	return parsed.Choices[0].Message.Content, nil
}

func (e *Local) refreshStatus(ctx context.Context) {
	st := e.probeHealth(ctx)
	e.mu.Lock()
	e.last = st
	e.mu.Unlock()
}

func (e *Local) probeHealth(ctx context.Context) Status {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", nil)
	if err != nil {
		return Status{Message: "runtime unreachable"}
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return Status{Message: "runtime unreachable"}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var health healthResponse
	_ = json.Unmarshal(body, &health)

	switch resp.StatusCode {
	case http.StatusOK:
		return Status{Ready: true, Progress: 1, Message: "ok"}
	case http.StatusServiceUnavailable:
		st := Status{Message: "loading model"}
		if health.Status != "" {
			st.Message = health.Status
		}
		if health.Progress != nil {
			st.Progress = *health.Progress
		}
		return st
	default:
		return Status{Message: fmt.Sprintf("runtime status %d", resp.StatusCode)}
	}
}

func (e *Local) servedModels(ctx context.Context) ([]string, error) {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, e.baseURL+"/v1/models", nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("models endpoint returned %d", resp.StatusCode)
	}

	var parsed modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(parsed.Data))
	for _, m := range parsed.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
