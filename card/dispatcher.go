package card

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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/cardgen-ai/cardgen/logger"
	"github.com/cardgen-ai/cardgen/model"
)

// DefaultEndpoint is the hosted generation function the web UI talks to
const DefaultEndpoint = "https://functions.poehali.dev/e7d48e4f-87c2-4e8b-b95a-8cb3d71bb7d4"

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	HTTPClientOption OptionType = "http_client"
	FormOption       OptionType = "form"
)

// Option represents a configuration option for the Dispatcher
type Option struct {
	Type  OptionType
	Value any
}

// WithHTTPClient sets the client used for the generation request
func WithHTTPClient(client *http.Client) Option {
	return Option{
		Type:  HTTPClientOption,
		Value: client,
	}
}

// WithForm makes the dispatcher store results into an existing form
func WithForm(form *Form) Option {
	return Option{
		Type:  FormOption,
		Value: form,
	}
}

// Dispatcher sends product input to the generation endpoint and tracks the request state.
// At most one dispatch is in flight at a time.
type Dispatcher struct {
	endpoint string
	client   *http.Client
	notifier Notifier
	form     *Form

	mu    sync.Mutex
	state model.RequestState
}

type generateRequest struct {
	ProductName     string `json:"productName"`
	ProductCategory string `json:"productCategory"`
	ProductFeatures string `json:"productFeatures"`
}

type generateResponse struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Error       string  `json:"error"`
}

// NewDispatcher creates a Dispatcher for the given endpoint.
// The default HTTP client has no timeout: a dispatch waits until the endpoint answers
// or ctx is done.
func NewDispatcher(endpoint string, notifier Notifier, opts ...Option) (*Dispatcher, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("generation endpoint cannot be empty")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}

	d := &Dispatcher{
		endpoint: endpoint,
		client:   &http.Client{},
		notifier: notifier,
		form:     NewForm(),
		state:    model.StateIdle,
	}

	for _, opt := range opts {
		switch opt.Type {
		case HTTPClientOption:
			if client, ok := opt.Value.(*http.Client); ok && client != nil {
				d.client = client
			}
		case FormOption:
			if form, ok := opt.Value.(*Form); ok && form != nil {
				d.form = form
			}
		}
	}

	return d, nil
}

// Form returns the form the dispatcher reads from and writes results to
func (d *Dispatcher) Form() *Form {
	return d.form
}

// State returns the current request state
func (d *Dispatcher) State() model.RequestState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// InFlight reports whether a dispatch is currently unresolved
func (d *Dispatcher) InFlight() bool {
	return d.State() == model.StateInFlight
}

// Submit dispatches the form's current input
func (d *Dispatcher) Submit(ctx context.Context) (model.GenerationResult, error) {
	return d.Generate(ctx, d.form.Input())
}

// Generate validates input, sends it to the endpoint and stores the result in the form.
// Every outcome is reported to the notifier. A call made while another dispatch is in
// flight fails with ErrInFlight and leaves the state untouched.
func (d *Dispatcher) Generate(ctx context.Context, input model.ProductInput) (model.GenerationResult, error) {
	if err := d.acquire(input); err != nil {
		d.notifyFailure(err)
		return model.GenerationResult{}, err
	}
	defer d.release()

	start := time.Now()
	result, err := d.send(ctx, input)
	if err != nil {
		logger.Warnw("Generation failed",
			"endpoint", d.endpoint,
			"duration", time.Since(start).String(),
			"error", err.Error(),
		)
		d.setState(model.StateFailed)
		d.notifyFailure(err)
		return model.GenerationResult{}, err
	}

	logger.Debugf("Generation succeeded in %s", time.Since(start))
	d.form.setResult(result)
	d.setState(model.StateSucceeded)
	d.notifier.Notify(model.Notification{
		Title:       msgSuccessTitle,
		Description: msgSuccess,
		Severity:    model.SeverityNormal,
	})
	return result, nil
}

// acquire checks the guard and validates input, moving to InFlight under one lock
func (d *Dispatcher) acquire(input model.ProductInput) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == model.StateInFlight {
		return ErrInFlight
	}

	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "productName")
	}
	if strings.TrimSpace(input.Category) == "" {
		missing = append(missing, "productCategory")
	}
	if len(missing) > 0 {
		d.state = model.StateFailed
		return &ValidationError{Fields: missing}
	}

	d.state = model.StateInFlight
	return nil
}

// release runs on every exit path so the dispatcher never stays InFlight
func (d *Dispatcher) release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == model.StateInFlight {
		d.state = model.StateFailed
	}
}

func (d *Dispatcher) setState(state model.RequestState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = state
}

func (d *Dispatcher) notifyFailure(err error) {
	if _, ok := err.(*ValidationError); ok {
		d.notifier.Notify(model.Notification{
			Title:       msgValidationTitle,
			Description: msgValidation,
			Severity:    model.SeverityDestructive,
		})
		return
	}
	d.notifier.Notify(model.Notification{
		Title:       msgFailureTitle,
		Description: userMessage(err),
		Severity:    model.SeverityDestructive,
	})
}

func (d *Dispatcher) send(ctx context.Context, input model.ProductInput) (model.GenerationResult, error) {
	body, err := json.Marshal(generateRequest{
		ProductName:     input.Name,
		ProductCategory: input.Category,
		ProductFeatures: input.Features,
	})
	if err != nil {
		return model.GenerationResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return model.GenerationResult{}, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	logger.Debugf("Sending generation request to %s", d.endpoint)
	resp, err := d.client.Do(req)
	if err != nil {
		return model.GenerationResult{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.GenerationResult{}, &NetworkError{Err: err}
	}

	var payload generateResponse
	parseErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := GenericRemoteMessage
		if parseErr == nil && payload.Error != "" {
			msg = payload.Error
		}
		return model.GenerationResult{}, &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			Err:        parseErr,
		}
	}

	if parseErr != nil {
		return model.GenerationResult{}, &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    GenericFailureMessage,
			Err:        fmt.Errorf("decode response: %w", parseErr),
		}
	}

	// Absent fields render as empty text instead of failing the dispatch.
	if payload.Title == nil || payload.Description == nil {
		logger.Warnw("Generation response is missing fields",
			"has_title", payload.Title != nil,
			"has_description", payload.Description != nil,
		)
	}

	return model.GenerationResult{
		Title:       deref(payload.Title),
		Description: deref(payload.Description),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
