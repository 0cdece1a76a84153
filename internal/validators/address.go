package validators

import "strings"

var ufs = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {}, "ES": {}, "GO": {},
	"MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {}, "PB": {}, "PR": {}, "PE": {}, "PI": {},
	"RJ": {}, "RN": {}, "RS": {}, "RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

func IsValidUF(uf string) bool {
	_, ok := ufs[strings.ToUpper(strings.TrimSpace(uf))]
	return ok
}

// NormalizeCEP devolve os 8 dígitos do CEP e se o formato é válido.
func NormalizeCEP(cep string) (string, bool) {
	d := OnlyDigits(cep)
	return d, len(d) == 8
}
