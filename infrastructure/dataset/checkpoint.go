package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/internal/usecases/normalizing"
	"github.com/vfg2006/store-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/store-monitor-api/pkg/utils"
)

// Colunas do artefato de checkpoint, na ordem de escrita
var checkpointHeader = []string{"store_id", "timestamp_utc", "status", "max date", "day", "weekday"}

// CheckpointFile lê e escreve o checkpoint em CSV. A escrita é atômica
// (arquivo temporário + rename): uma falha no meio da gravação preserva o
// checkpoint anterior intacto.
type CheckpointFile struct {
	path string
}

func NewCheckpointFile(path string) *CheckpointFile {
	return &CheckpointFile{path: path}
}

// WriteCheckpoint substitui o checkpoint por inteiro
func (f *CheckpointFile) WriteCheckpoint(ctx context.Context, records []domain.CheckpointRecord) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório do checkpoint")
	}

	tmp, err := os.CreateTemp(dir, ".middle-*.csv")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário do checkpoint")
	}

	if err := writeCheckpointRows(tmp, records); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao fechar o arquivo do checkpoint")
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao substituir o checkpoint")
	}

	return nil
}

func writeCheckpointRows(w io.Writer, records []domain.CheckpointRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(checkpointHeader); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho do checkpoint")
	}

	for _, rec := range records {
		row := []string{
			rec.StoreID,
			utils.FormatPollTimestamp(rec.TimestampUTC),
			string(rec.Status),
			utils.FormatPollTimestamp(rec.MaxDate),
			strconv.Itoa(rec.Day),
			strconv.Itoa(rec.Weekday),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "erro ao escrever linha do checkpoint")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao descarregar o checkpoint")
}

// ReadCheckpoint lê o checkpoint por inteiro
func (f *CheckpointFile) ReadCheckpoint(ctx context.Context) ([]domain.CheckpointRecord, error) {
	records := make([]domain.CheckpointRecord, 0)

	err := readCSV(f.path, func(row map[string]string) error {
		ts, err := utils.ParsePollTimestamp(row["timestamp_utc"])
		if err != nil {
			return err
		}

		maxDate, err := utils.ParsePollTimestamp(row["max date"])
		if err != nil {
			return err
		}

		day, err := strconv.Atoi(row["day"])
		if err != nil {
			return errors.Wrapf(err, "dia inválido %q", row["day"])
		}

		weekday, err := strconv.Atoi(row["weekday"])
		if err != nil {
			return errors.Wrapf(err, "dia da semana inválido %q", row["weekday"])
		}

		records = append(records, domain.CheckpointRecord{
			StoreID:      row["store_id"],
			TimestampUTC: ts,
			Status:       domain.Status(row["status"]),
			MaxDate:      maxDate,
			Day:          day,
			Weekday:      weekday,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o checkpoint")
	}

	return records, nil
}

var (
	_ normalizing.CheckpointWriter = (*CheckpointFile)(nil)
	_ reporting.CheckpointSource   = (*CheckpointFile)(nil)
)
