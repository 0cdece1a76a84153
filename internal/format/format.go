// Package format concentra a formatação pt-BR exibida nas telas: CPF, moeda e datas.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BruksfildServices01/cesta-amigo/internal/validators"
)

// MaskCPF aplica 000.000.000-00 quando há exatamente 11 dígitos.
// Com menos dígitos devolve só os números; acima disso devolve a entrada intacta.
func MaskCPF(value string) string {
	d := validators.OnlyDigits(value)
	switch {
	case len(d) == 11:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case len(d) < 11:
		return d
	default:
		return value
	}
}

// BRL formata centavos como "R$ 8.400,00".
func BRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	frac := cents % 100

	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(reais), frac)
}

// BRLFloat arredonda para centavos antes de formatar.
func BRLFloat(v float64) string {
	return BRL(Cents(v))
}

// CompactBRL é o rótulo curto das barras de vendas: "R$ 12.5k".
func CompactBRL(v float64) string {
	return fmt.Sprintf("R$ %.1fk", v/1000)
}

func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

var weekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DateLong: "quinta-feira, 26 de dezembro de 2024".
func DateLong(t time.Time) string {
	return DateLongNoYear(t) + fmt.Sprintf(" de %d", t.Year())
}

// DateLongNoYear: "quinta-feira, 26 de dezembro".
func DateLongNoYear(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
}

// DateShort: "15/12/2024".
func DateShort(t time.Time) string {
	return t.Format("02/01/2006")
}

func Percent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.1f%%", v), ".", ",", 1)
}
