package utils

import (
	"strings"
	"time"
)

// DateTimeLayout é o formato de data e hora aceito pela API de vendas
const DateTimeLayout = "2006-01-02 15:04:05"

// ParseDateTime aceita "2006-01-02 15:04:05" ou apenas "2006-01-02".
// O retorno dateOnly indica que a hora não foi informada.
func ParseDateTime(value string) (date time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)

	date, err = time.ParseInLocation(DateTimeLayout, value, time.Local)
	if err == nil {
		return date, false, nil
	}

	date, dateErr := time.ParseInLocation(time.DateOnly, value, time.Local)
	if dateErr != nil {
		return time.Time{}, false, err
	}

	return date, true, nil
}

func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
}

func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
