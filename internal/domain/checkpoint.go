package domain

import "time"

// CheckpointRecord é uma linha do artefato durável que desacopla a
// normalização (cara, histórico inteiro) do cálculo de janelas (barato,
// por requisição). MaxDate é idêntico em todas as linhas de uma mesma
// loja: o maior timestamp observado para ela.
type CheckpointRecord struct {
	StoreID      string
	TimestampUTC time.Time
	Status       Status
	MaxDate      time.Time
	Day          int
	Weekday      int
}
