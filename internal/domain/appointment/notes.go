package appointment

import "strings"

const (
	labelType         = "Tipo: "
	labelAddress      = "Endereço: "
	labelObservations = "Observações: "
)

// NoteParts são os campos do formulário de agendamento que não têm coluna própria.
type NoteParts struct {
	Type         string `json:"type"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
}

// ComposeNotes junta tipo, endereço e observações em um texto livre, uma linha por campo.
func ComposeNotes(kind, address, observations string) string {
	lines := make([]string, 0, 3)
	if v := oneLine(kind); v != "" {
		lines = append(lines, labelType+v)
	}
	if v := oneLine(address); v != "" {
		lines = append(lines, labelAddress+v)
	}
	if v := strings.TrimSpace(observations); v != "" {
		lines = append(lines, labelObservations+v)
	}
	return strings.Join(lines, "\n")
}

// ParseNotes desfaz ComposeNotes. Texto sem rótulo vai para Observations.
func ParseNotes(notes string) NoteParts {
	var p NoteParts
	var extra []string

	for i, line := range strings.Split(notes, "\n") {
		switch {
		case strings.HasPrefix(line, labelType):
			p.Type = strings.TrimPrefix(line, labelType)
		case strings.HasPrefix(line, labelAddress):
			p.Address = strings.TrimPrefix(line, labelAddress)
		case strings.HasPrefix(line, labelObservations):
			extra = append(extra, strings.TrimPrefix(line, labelObservations))
		default:
			if i == 0 && strings.TrimSpace(line) == "" {
				continue
			}
			extra = append(extra, line)
		}
	}

	p.Observations = strings.Join(extra, "\n")
	return p
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
