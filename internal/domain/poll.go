package domain

import "time"

// Status representa o estado operacional observado de uma loja em um poll
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// PollRecord é uma observação bruta do status de uma loja, imutável,
// uma linha por poll. É a fonte de verdade de todo o pipeline.
type PollRecord struct {
	StoreID      string    `json:"store_id"`
	TimestampUTC time.Time `json:"timestamp_utc"`
	Status       Status    `json:"status"`
}

// BusinessHourEntry é uma entrada do horário comercial de uma loja.
// Day segue a convenção segunda=0 ... domingo=6. Os horários são
// strings "HH:MM:SS" no fuso local da loja, sem data.
type BusinessHourEntry struct {
	StoreID        string `json:"store_id"`
	Day            int    `json:"day"`
	StartTimeLocal string `json:"start_time_local"`
	EndTimeLocal   string `json:"end_time_local"`
}

// StoreTimezone associa uma loja ao nome textual do seu fuso horário
type StoreTimezone struct {
	StoreID      string `json:"store_id"`
	TimezoneName string `json:"timezone_str"`
}

// NormalizedRecord é o resultado do join de polls, horário comercial e
// offset de fuso. StartUTC/EndUTC são os limites do horário comercial
// re-datados para a data do poll e ancorados em UTC.
type NormalizedRecord struct {
	StoreID      string
	Status       Status
	TimestampUTC time.Time
	Day          int
	StartUTC     time.Time
	EndUTC       time.Time
}

// Valores preenchidos quando o join não encontra correspondência
const (
	DefaultDay            = 6
	DefaultStartTimeLocal = "00:00:00"
	DefaultEndTimeLocal   = "23:59:59"
	DefaultUTCOffset      = -6 * time.Hour
)

// FullDaySpan é a duração que caracteriza uma agenda 24/7 (00:00:00–23:59:59)
const FullDaySpan = 23*time.Hour + 59*time.Minute + 59*time.Second

// Weekday converte o dia da semana de time.Time para a base usada pelas
// agendas (segunda=0 ... domingo=6)
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
