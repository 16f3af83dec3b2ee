package predict

import (
	"errors"
	"fmt"
)

// ErrTransport agrupa fallas de red, status no exitoso y respuestas que no son JSON.
var ErrTransport = errors.New("prediction request failed")

// TransportError conserva el detalle para logs; al usuario solo se le muestra un aviso generico.
type TransportError struct {
	Op         string
	StatusCode int
	RequestID  string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status=%d request_id=%s: %v", e.Op, e.StatusCode, e.RequestID, e.Err)
	}
	return fmt.Sprintf("%s: request_id=%s: %v", e.Op, e.RequestID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }
