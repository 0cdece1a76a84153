package order

import "github.com/BruksfildServices01/cesta-amigo/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPendente  Status = "pendente"
	StatusPago      Status = "pago"
	StatusAtrasado  Status = "atrasado"
	StatusCancelado Status = "cancelado"
)

var transitions = map[Status][]Status{
	StatusPendente: {StatusPago, StatusAtrasado, StatusCancelado},
	StatusAtrasado: {StatusPago, StatusCancelado},
}

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPendente, StatusPago, StatusAtrasado, StatusCancelado:
		return st, nil
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}
}

// CanTransition define se a venda pode sair de current para next.
// pago e cancelado são finais.
func CanTransition(current, next Status) error {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_status_transition")
}

func (s Status) Final() bool {
	return len(transitions[s]) == 0
}

// Label é o texto dos badges de status.
func (s Status) Label() string {
	switch s {
	case StatusPendente:
		return "Pendente"
	case StatusPago:
		return "Pago"
	case StatusAtrasado:
		return "Atrasado"
	case StatusCancelado:
		return "Cancelado"
	}
	return string(s)
}

func InitialStatus() Status {
	return StatusPendente
}
