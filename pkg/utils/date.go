package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Formato dos timestamps dos polls: "2023-01-25 10:04:35.123456 UTC".
// A fração de segundos é opcional no dataset de origem.
const (
	pollTimestampLayout = "2006-01-02 15:04:05.999999"
	pollTimestampSuffix = " UTC"

	localTimeLayout = "15:04:05"
)

// ParsePollTimestamp interpreta um timestamp de poll no formato do dataset
// e o ancora em UTC
func ParsePollTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), pollTimestampSuffix)
	if trimmed == "" {
		return time.Time{}, nil
	}

	ts, err := time.ParseInLocation(pollTimestampLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "timestamp inválido %q", value)
	}

	return ts, nil
}

// FormatPollTimestamp é o inverso de ParsePollTimestamp; usado na escrita
// do checkpoint para que reexecuções sejam byte a byte idênticas
func FormatPollTimestamp(ts time.Time) string {
	return ts.UTC().Format(pollTimestampLayout) + pollTimestampSuffix
}

// ParseLocalTime interpreta um horário "HH:MM:SS" sem data
func ParseLocalTime(value string) (hour, minute, second int, err error) {
	parsed, err := time.Parse(localTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, 0, 0, errors.Wrapf(err, "horário inválido %q", value)
	}
	return parsed.Hour(), parsed.Minute(), parsed.Second(), nil
}

// RedateLocalTime re-data um horário local para a mesma data de calendário
// do timestamp de referência. Necessário porque as agendas guardam apenas
// horários, não instantes completos.
func RedateLocalTime(reference time.Time, hour, minute, second int) time.Time {
	return time.Date(
		reference.Year(), reference.Month(), reference.Day(),
		hour, minute, second, 0,
		time.UTC,
	)
}
