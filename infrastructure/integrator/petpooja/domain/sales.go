package petpoojadomain

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-data-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultTransactionTime = "00:00:00"
	DefaultUnknown         = "Unknown"
)

// SalesRecord é uma venda da coleção "data" já com os valores padrão aplicados
type SalesRecord struct {
	ReceiptNumber     string  `json:"receipt_number"`
	SaleDate          string  `json:"sale_date"`
	TransactionTime   string  `json:"transaction_time"`
	InvoiceAmount     float64 `json:"invoice_amount"`
	TaxAmount         float64 `json:"tax_amount"`
	DiscountAmount    float64 `json:"discount_amount"`
	RoundOff          float64 `json:"round_off"`
	NetSale           float64 `json:"net_sale"`
	PaymentMode       string  `json:"payment_mode"`
	OrderType         string  `json:"order_type"`
	TransactionStatus string  `json:"transaction_status"`
}

// NewSalesRecord retorna um registro apenas com os valores padrão
func NewSalesRecord() SalesRecord {
	return SalesRecord{
		TransactionTime:   DefaultTransactionTime,
		PaymentMode:       DefaultUnknown,
		OrderType:         DefaultUnknown,
		TransactionStatus: DefaultUnknown,
	}
}

// UnmarshalJSON concentra a coerção e os defaults de todos os campos.
// Entradas que não são objetos viram um registro só com defaults.
func (r *SalesRecord) UnmarshalJSON(data []byte) error {
	*r = NewSalesRecord()

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.ReceiptNumber = textField(fields["receipt_number"], "")
	r.SaleDate = textField(fields["sale_date"], "")
	r.TransactionTime = textField(fields["transaction_time"], DefaultTransactionTime)
	r.InvoiceAmount = amountField(fields["invoice_amount"])
	r.TaxAmount = amountField(fields["tax_amount"])
	r.DiscountAmount = amountField(fields["discount_amount"])
	r.RoundOff = amountField(fields["round_off"])
	r.NetSale = amountField(fields["net_sale"])
	r.PaymentMode = textField(fields["payment_mode"], DefaultUnknown)
	r.OrderType = textField(fields["order_type"], DefaultUnknown)
	r.TransactionStatus = textField(fields["transaction_status"], DefaultUnknown)

	return nil
}

func textField(raw jsoniter.RawMessage, def string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return def
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return def
		}
		return s
	case '{', '[':
		return ""
	default:
		// números e booleanos mantêm o texto literal
		return string(raw)
	}
}

func amountField(raw jsoniter.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		return parseAmount(s)
	case 't':
		return 1
	case 'f', 'n', '{', '[':
		return 0
	default:
		return parseAmount(string(raw))
	}
}

func parseAmount(s string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return value
}

// SalesPayload é o documento retornado pela API com a coleção "data" decodificada
type SalesPayload struct {
	Records []SalesRecord
	Raw     []byte
}

func (p *SalesPayload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Records)
}

// DecodeSalesPayload decodifica o corpo de uma resposta 200.
// Apenas um corpo que não é JSON válido gera erro; ausência de "data" resulta em zero registros.
func DecodeSalesPayload(body []byte) (*SalesPayload, error) {
	if !json.Valid(body) {
		return nil, &MalformedPayloadError{Err: errInvalidJSON, Body: body}
	}

	payload := &SalesPayload{Records: []SalesRecord{}, Raw: body}

	var envelope map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		// documento válido mas não é um objeto
		return payload, nil
	}

	data := bytes.TrimSpace(envelope["data"])
	if len(data) == 0 || data[0] != '[' {
		return payload, nil
	}

	var entries []jsoniter.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &MalformedPayloadError{Err: err, Body: body}
	}

	payload.Records = make([]SalesRecord, len(entries))
	for i, entry := range entries {
		if err := payload.Records[i].UnmarshalJSON(entry); err != nil {
			return nil, &MalformedPayloadError{Err: err, Body: body}
		}
	}

	return payload, nil
}

type SalesDataParams struct {
	AppKey      string
	AppSecret   string
	AccessToken string
	RestID      string
	Period      domain.SalesPeriod
}
