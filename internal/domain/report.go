package domain

import "time"

// Window identifica uma das três janelas de relatório
type Window string

const (
	WindowHour Window = "hour"
	WindowDay  Window = "day"
	WindowWeek Window = "week"
)

// Length retorna o comprimento da janela
func (w Window) Length() time.Duration {
	switch w {
	case WindowHour:
		return time.Hour
	case WindowDay:
		return 24 * time.Hour
	case WindowWeek:
		return 7 * 24 * time.Hour
	}
	return 0
}

// Minutes retorna o comprimento da janela em minutos
func (w Window) Minutes() int {
	return int(w.Length() / time.Minute)
}

// Windows lista as janelas na ordem de apresentação do relatório
var Windows = []Window{WindowHour, WindowDay, WindowWeek}

// MinuteCount acumula minutos ativos e inativos de uma loja em uma janela
type MinuteCount struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// WindowResult mapeia store_id para a contagem de minutos de uma janela
type WindowResult map[string]MinuteCount

// StoreReport é o registro final de uma loja com as três janelas resolvidas
type StoreReport struct {
	StoreID string      `json:"store_id"`
	Hour    MinuteCount `json:"hour"`
	Day     MinuteCount `json:"day"`
	Week    MinuteCount `json:"week"`
}

// Count retorna a contagem da janela pedida
func (r StoreReport) Count(w Window) MinuteCount {
	switch w {
	case WindowHour:
		return r.Hour
	case WindowDay:
		return r.Day
	case WindowWeek:
		return r.Week
	}
	return MinuteCount{}
}
