package collatex_test

import (
	"bytes"
	"testing"

	"github.com/aussiebroadwan/technotes/pkg/collatex"
	"github.com/stretchr/testify/require"
)

func TestKeyEquality(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Zakupy", "zakupy", true},
		{"ZAKUPY", "zakupy", true},
		{"Łódź", "łÓdŹ", true},
		{"Ala", "ala", true},
		{"resume", "résumé", false},
		{"zolw", "żółw", false},
		{"Zakupy", "Zakupy2", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, bytes.Equal(collatex.Key(tt.a), collatex.Key(tt.b)))
		})
	}
}

func TestKeyIsStable(t *testing.T) {
	k1 := collatex.Key("Notatka")
	_ = collatex.Key("something else entirely")
	k2 := collatex.Key("Notatka")
	require.Equal(t, k1, k2)
	require.NotEmpty(t, k1)
}
