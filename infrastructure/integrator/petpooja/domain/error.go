package petpoojadomain

import (
	"errors"
	"fmt"
)

var errInvalidJSON = errors.New("corpo da resposta não é um JSON válido")

const maxBodySnippet = 256

// MalformedPayloadError indica uma resposta 200 que não pôde ser decodificada.
// Não é reprocessada.
type MalformedPayloadError struct {
	Err  error
	Body []byte
}

func (e *MalformedPayloadError) Error() string {
	body := e.Body
	if len(body) > maxBodySnippet {
		body = body[:maxBodySnippet]
	}
	return fmt.Sprintf("payload de vendas malformado: %v (corpo: %q)", e.Err, body)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}
