package sheetdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeHeader(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"data aposta exact", "DATA APOSTA", ColDataAposta},
		{"data aposta accented lowercase", "data da apósta", "data da apósta"}, // contains "APOSTA" but not "DATA APOSTA"
		{"data aposta contains", "Data Aposta (BR)", ColDataAposta},
		{"data aposta accents and padding", "  DÁTA   APOSTA  ", ColDataAposta},
		{"lucro", "Lucro", ColLucro},
		{"lucro accented", "LÚCRO", ColLucro},
		{"lucro with suffix stays original", "Lucro R$", "Lucro R$"},
		{"stake", "stake", ColStake},
		{"casa exact", "Casa", ColCasa},
		{"bookmaker contains book", "Bookmaker", ColCasa},
		{"book prefix", "BOOKIE", ColCasa},
		{"esporte", "Esporte", ColEsporte},
		{"esportes plural", "ESPORTES", ColEsporte},
		{"data evento contains", "Data do Evento", "Data do Evento"}, // "DATA DO EVENTO" does not contain "DATA EVENTO"
		{"data evento", "data evento", ColDataEvento},
		{"data jogo", "DATA JOGO (hora)", ColDataEvento},
		{"evento", "EVENTO", ColEvento},
		{"partida", "Partida", ColEvento},
		{"match contains", "Match / Jogo", ColEvento},
		{"unknown keeps original trimmed", "  Observações  ", "Observações"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalizeHeader(tt.raw))
		})
	}
}

func TestCanonicalizeHeaderIdempotent(t *testing.T) {
	canonical := []string{ColDataAposta, ColLucro, ColStake, ColCasa, ColEsporte, ColDataEvento, ColEvento}
	for _, name := range canonical {
		assert.Equal(t, name, CanonicalizeHeader(name), "canonical name %q must map to itself", name)
	}
}

func TestNormalizeHeaderText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  lucro  ", "LUCRO"},
		{"Está\t ção", "ESTA CAO"},
		{"çãé", "CAE"},
		{"a  b   c", "A B C"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeaderText(tt.raw), "raw=%q", tt.raw)
	}
}
