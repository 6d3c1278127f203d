package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

// Kcal formats a calorie count with thousands separators, e.g. "2,200 kcal".
func Kcal(n int) string {
	return numbers.Sprintf("%d kcal", n)
}
