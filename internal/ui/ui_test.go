package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKcal(t *testing.T) {
	assert.Equal(t, "0 kcal", Kcal(0))
	assert.Equal(t, "600 kcal", Kcal(600))
	assert.Equal(t, "2,200 kcal", Kcal(2200))
	assert.Equal(t, "1,000,000 kcal", Kcal(1000000))
}

func TestProgressBar(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, &bytes.Buffer{}, ThemeByName("mono"), false)

	assert.Equal(t, ".........."+"   0%", p.ProgressBar(0, 2000, 10))
	assert.Equal(t, "#####....."+"  50%", p.ProgressBar(1000, 2000, 10))
	assert.Equal(t, "##########"+" 110%", p.ProgressBar(2200, 2000, 10))
	assert.Equal(t, "#####"+" 100%", p.ProgressBar(1, 0, 1))
}

func TestPanel_Mono(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, ThemeByName("mono"), true)

	p.Panel([]string{"ab", "abcd"})

	want := strings.Join([]string{
		"+------+",
		"| ab   |",
		"| abcd |",
		"+------+",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestColor(t *testing.T) {
	classic := NewPrinter(&bytes.Buffer{}, &bytes.Buffer{}, ThemeByName("classic"), true)
	assert.Equal(t, fgRed+"x"+reset, classic.C(fgRed, "x"))

	off := NewPrinter(&bytes.Buffer{}, &bytes.Buffer{}, ThemeByName("classic"), false)
	assert.Equal(t, "x", off.C(fgRed, "x"))

	mono := NewPrinter(&bytes.Buffer{}, &bytes.Buffer{}, ThemeByName("mono"), true)
	assert.False(t, mono.Color)
}

func TestOKFail(t *testing.T) {
	var out, errw bytes.Buffer
	p := NewPrinter(&out, &errw, ThemeByName("mono"), false)

	p.OK("added")
	p.Fail("boom")

	assert.Equal(t, "ok: added\n", out.String())
	assert.Equal(t, "error: boom\n", errw.String())
}

func TestThemeByName_DefaultsToClassic(t *testing.T) {
	assert.Equal(t, "classic", ThemeByName("unknown").Name)
	assert.Equal(t, "neon", ThemeByName("NEON").Name)
}
