package domain

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// weekdayNames канонические имена дней недели по локалям
// Расписания персонала приходят в той локали, в которой их ввел оператор,
// поэтому дата сопоставляется со всеми известными алиасами своего дня недели
var weekdayNames = map[time.Weekday][]string{
	time.Monday:    {"monday", "lunes"},
	time.Tuesday:   {"tuesday", "martes"},
	time.Wednesday: {"wednesday", "miercoles"},
	time.Thursday:  {"thursday", "jueves"},
	time.Friday:    {"friday", "viernes"},
	time.Saturday:  {"saturday", "sabado"},
	time.Sunday:    {"sunday", "domingo"},
}

// diacriticStripper убирает диакритические знаки через каноническую
// декомпозицию: NFD -> удаление combining marks -> NFC
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeDayName normalizes a locale-rendered weekday name so that
// names compare equal regardless of case and accent rendering
// ("Miércoles" -> "miercoles")
func NormalizeDayName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	stripped, _, err := transform.String(diacriticStripper, lowered)
	if err != nil {
		// Некорректный UTF-8 - сравниваем как есть
		return lowered
	}

	return stripped
}

// WeekdayNames returns the normalized names of the date's weekday
// across all supported locales
func WeekdayNames(date time.Time) []string {
	return weekdayNames[date.Weekday()]
}
