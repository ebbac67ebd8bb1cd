package label

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLabelName(t *testing.T) {
	tests := []struct {
		name  string
		label Label
		want  string
	}{
		{name: "code", label: New(0x0810, Code), want: "L_0810"},
		{name: "data", label: New(0x0900, Data), want: "l_0900"},
		{name: "zeropage code", label: New(0x00FB, Code), want: "L_FB"},
		{name: "external zeropage", label: New(0x00FB, External), want: "Z_FB"},
		{name: "external", label: New(0xFFD2, External), want: "X_FFD2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.label.Name())
			assert.Equal(t, tt.want, tt.label.String())
		})
	}
}
