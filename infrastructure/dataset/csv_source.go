// Package dataset contém a leitura e escrita dos artefatos tabulares do
// pipeline: as tabelas brutas de entrada, o checkpoint e os relatórios.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/internal/usecases/normalizing"
	"github.com/vfg2006/store-monitor-api/pkg/utils"
)

// Files aponta para os três CSVs de entrada
type Files struct {
	StoreStatus   string
	BusinessHours string
	Timezones     string
}

// CSVSource implementa normalizing.DataSource sobre os arquivos do dataset.
// As colunas são resolvidas pelo cabeçalho, não pela posição.
type CSVSource struct {
	files Files
}

func NewCSVSource(files Files) *CSVSource {
	return &CSVSource{files: files}
}

// PollRecords lê a tabela de polls. Linhas sem status ou sem timestamp são
// mantidas com valor zero: o normalizador as descarta pela política
// documentada, não o leitor.
func (s *CSVSource) PollRecords(ctx context.Context) ([]domain.PollRecord, error) {
	records := make([]domain.PollRecord, 0)

	err := readCSV(s.files.StoreStatus, func(row map[string]string) error {
		ts, err := utils.ParsePollTimestamp(row["timestamp_utc"])
		if err != nil {
			return err
		}

		records = append(records, domain.PollRecord{
			StoreID:      row["store_id"],
			TimestampUTC: ts,
			Status:       domain.Status(row["status"]),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a tabela de polls")
	}

	return records, nil
}

// BusinessHours lê a tabela de horário comercial
func (s *CSVSource) BusinessHours(ctx context.Context) ([]domain.BusinessHourEntry, error) {
	entries := make([]domain.BusinessHourEntry, 0)

	err := readCSV(s.files.BusinessHours, func(row map[string]string) error {
		day, err := strconv.Atoi(row["day"])
		if err != nil {
			return errors.Wrapf(err, "dia inválido %q", row["day"])
		}

		entries = append(entries, domain.BusinessHourEntry{
			StoreID:        row["store_id"],
			Day:            day,
			StartTimeLocal: row["start_time_local"],
			EndTimeLocal:   row["end_time_local"],
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a tabela de horário comercial")
	}

	return entries, nil
}

// StoreTimezones lê a tabela de fusos horários
func (s *CSVSource) StoreTimezones(ctx context.Context) ([]domain.StoreTimezone, error) {
	zones := make([]domain.StoreTimezone, 0)

	err := readCSV(s.files.Timezones, func(row map[string]string) error {
		zones = append(zones, domain.StoreTimezone{
			StoreID:      row["store_id"],
			TimezoneName: row["timezone_str"],
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a tabela de fusos horários")
	}

	return zones, nil
}

// readCSV itera as linhas de um CSV entregando cada uma como um mapa
// coluna -> valor resolvido pelo cabeçalho
func readCSV(path string, fn func(row map[string]string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "erro ao ler o cabeçalho de %s", path)
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "erro ao ler linha de %s", path)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}

		if err := fn(row); err != nil {
			return err
		}
	}
}

var _ normalizing.DataSource = (*CSVSource)(nil)
