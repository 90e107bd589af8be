package staffid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator("AFIT")

	tests := []struct {
		name      string
		shortName string
		sequence  int
		want      string
	}{
		{name: "single digit padded", shortName: "ENG", sequence: 7, want: "AFIT/ENG/0007"},
		{name: "first member", shortName: "HRM", sequence: 1, want: "AFIT/HRM/0001"},
		{name: "four digits unpadded", shortName: "ENG", sequence: 1234, want: "AFIT/ENG/1234"},
		{name: "beyond padding width", shortName: "ENG", sequence: 12345, want: "AFIT/ENG/12345"},
		{name: "short name uppercased", shortName: "eng", sequence: 2, want: "AFIT/ENG/0002"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gen.Generate(tc.shortName, tc.sequence))
		})
	}
}

func TestNewGeneratorNormalizesPrefix(t *testing.T) {
	gen := NewGenerator(" afit ")
	assert.Equal(t, "AFIT/ENG/0001", gen.Generate("ENG", 1))
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := NewGenerator("AFIT")
	assert.Equal(t, gen.Generate("ENG", 42), gen.Generate("ENG", 42))
}
