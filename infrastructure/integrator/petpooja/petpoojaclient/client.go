package petpoojaclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	"github.com/vfg2006/sales-data-sync/internal/config"
)

const defaultRetryDelay = 2 * time.Second

type Client interface {
	GetSalesData(ctx context.Context, params petpoojadomain.SalesDataParams, maxAttempts int) (*petpoojadomain.SalesPayload, error)
	FetchWithRetry(ctx context.Context, rawURL string, maxAttempts int) (*petpoojadomain.SalesPayload, error)
}

type sleepFunc func(ctx context.Context, d time.Duration) error

type PetpoojaClient struct {
	httpClient *resty.Client
	baseURL    string
	retryDelay time.Duration
	sleep      sleepFunc
}

type Option func(*PetpoojaClient)

// WithSleep substitui a espera entre tentativas (usado nos testes)
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *PetpoojaClient) {
		c.sleep = fn
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(c *PetpoojaClient) {
		c.retryDelay = d
	}
}

// NewClient cria o cliente da API de vendas. O retry do resty fica desligado,
// as tentativas são controladas por FetchWithRetry.
func NewClient(cfg *config.Config, opts ...Option) Client {
	httpClient := resty.New().
		SetTimeout(cfg.Fetch.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	retryDelay := cfg.Fetch.RetryDelay
	if retryDelay == 0 {
		retryDelay = defaultRetryDelay
	}

	client := &PetpoojaClient{
		httpClient: httpClient,
		baseURL:    cfg.Petpooja.URL,
		retryDelay: retryDelay,
		sleep:      sleepContext,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// sleepContext espera d ou até o contexto ser cancelado (sinal de término do processo)
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
