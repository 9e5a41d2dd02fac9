package petpoojaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	petpoojadomain "github.com/vfg2006/sales-data-sync/infrastructure/integrator/petpooja/domain"
	"github.com/vfg2006/sales-data-sync/pkg/log"
	"github.com/vfg2006/sales-data-sync/pkg/metrics"
)

var (
	ErrFetchExhausted     = errors.New("falha ao buscar dados de vendas após todas as tentativas")
	ErrInvalidMaxAttempts = errors.New("número máximo de tentativas deve ser positivo")
)

// BuildSalesDataURL monta a URL de get_sales_data com os parâmetros na ordem esperada pela API
func BuildSalesDataURL(baseURL string, params petpoojadomain.SalesDataParams) string {
	query := []struct{ key, value string }{
		{"app_key", params.AppKey},
		{"app_secret", params.AppSecret},
		{"access_token", params.AccessToken},
		{"restID", params.RestID},
		{"from_date", params.Period.FromString()},
		{"to_date", params.Period.ToString()},
	}

	pairs := make([]string, 0, len(query))
	for _, q := range query {
		pairs = append(pairs, q.key+"="+url.QueryEscape(q.value))
	}

	return strings.TrimRight(baseURL, "/") + "/?" + strings.Join(pairs, "&")
}

func (c *PetpoojaClient) GetSalesData(ctx context.Context, params petpoojadomain.SalesDataParams, maxAttempts int) (*petpoojadomain.SalesPayload, error) {
	return c.FetchWithRetry(ctx, BuildSalesDataURL(c.baseURL, params), maxAttempts)
}

// FetchWithRetry faz GET em rawURL até receber 200 ou esgotar maxAttempts.
// Toda tentativa com falha é seguida da espera fixa, inclusive a última.
// Um 200 com corpo inválido retorna MalformedPayloadError imediatamente.
func (c *PetpoojaClient) FetchWithRetry(ctx context.Context, rawURL string, maxAttempts int) (*petpoojadomain.SalesPayload, error) {
	if maxAttempts < 1 {
		return nil, ErrInvalidMaxAttempts
	}

	logger := log.ForContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.httpClient.R().SetContext(ctx).Get(rawURL)

		switch {
		case err != nil:
			lastErr = fmt.Errorf("erro ao executar a requisição: %w", err)
			metrics.FetchAttempts.WithLabelValues(metrics.ResultTransportError).Inc()

			logger.WithFields(log.Fields{
				"attempt":      attempt,
				"max_attempts": maxAttempts,
				"error":        err.Error(),
			}).Warnf("Tentativa %d falhou: %v", attempt, err)

		case resp.StatusCode() == http.StatusOK:
			payload, err := petpoojadomain.DecodeSalesPayload(resp.Body())
			if err != nil {
				metrics.FetchAttempts.WithLabelValues(metrics.ResultMalformed).Inc()
				logger.WithFields(log.Fields{
					"attempt": attempt,
					"error":   err.Error(),
				}).Error("Resposta 200 com payload inválido")
				return nil, err
			}

			metrics.FetchAttempts.WithLabelValues(metrics.ResultSuccess).Inc()
			logger.WithFields(log.Fields{
				"attempt": attempt,
				"records": payload.Len(),
			}).Info("Dados de vendas obtidos da API com sucesso")

			return payload, nil

		default:
			lastErr = fmt.Errorf("requisição falhou com status: %s", resp.Status())
			metrics.FetchAttempts.WithLabelValues(metrics.ResultHTTPError).Inc()

			logger.WithFields(log.Fields{
				"attempt":      attempt,
				"max_attempts": maxAttempts,
				"status_code":  resp.StatusCode(),
			}).Warnf("Tentativa %d falhou: HTTP %d", attempt, resp.StatusCode())
		}

		if err := c.sleep(ctx, c.retryDelay); err != nil {
			return nil, err
		}
	}

	logger.WithField("max_attempts", maxAttempts).Error("Falha ao buscar dados de vendas após várias tentativas")

	return nil, fmt.Errorf("%w (%d tentativas): %v", ErrFetchExhausted, maxAttempts, lastErr)
}
