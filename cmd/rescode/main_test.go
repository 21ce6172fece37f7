package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-analog/analog/resistor"
)

func TestParseValues(t *testing.T) {
	var warn bytes.Buffer
	got := parseValues([]string{"4.7k", "bogus", "1M", "10x"}, &warn)
	assert.Equal(t, []float64{4700, 1e6}, got)
	assert.Equal(t, 2, strings.Count(warn.String(), "warning: skipping"))
}

func TestPrintList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printList(&out, resistor.E12()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, resistor.E12().Len()+2)
	assert.Contains(t, out.String(), "[brown, black, red]")
	assert.Contains(t, out.String(), "[yellow, violet, orange]")
}

func TestPrintCodes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCodes(&out, resistor.E12(), []float64{1000, 4500}, false, 4))

	s := out.String()
	assert.Contains(t, s, "[brown, black, red]")
	assert.Contains(t, s, "[yellow, violet, red]")
	assert.Contains(t, s, "200 Ω")
	assert.NotContains(t, s, "Combinations for")
}

func TestPrintCodes_Combos(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCodes(&out, resistor.E12(), []float64{1000, 4500}, true, 4))

	s := out.String()
	assert.NotContains(t, s, "Combinations for 1 kΩ")
	assert.Contains(t, s, "Combinations for 4.5 kΩ")
	assert.Contains(t, s, "Series: ")
}
