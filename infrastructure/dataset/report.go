package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cabeçalho do CSV final servido ao cliente
const reportCSVHeader = "store_id,uptime_last_hour,uptime_last_day,uptime_last_week,downtime_last_hour,downtime_last_day,downtime_last_week"

// ReportStore persiste um artefato JSON por requisição no diretório de
// resultados e o renderiza em CSV sob demanda
type ReportStore struct {
	dir string
}

func NewReportStore(dir string) *ReportStore {
	return &ReportStore{dir: dir}
}

// SaveReport grava o relatório da requisição (JSON, rename atômico)
func (s *ReportStore) SaveReport(ctx context.Context, requestID string, reports []domain.StoreReport) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório de relatórios")
	}

	data, err := json.Marshal(reports)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o relatório")
	}

	tmp, err := os.CreateTemp(s.dir, ".report-*.json")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário do relatório")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao escrever o relatório")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao fechar o relatório")
	}

	if err := os.Rename(tmp.Name(), s.reportPath(requestID)); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao substituir o relatório")
	}

	return nil
}

// LoadReport lê o relatório persistido de uma requisição
func (s *ReportStore) LoadReport(ctx context.Context, requestID string) ([]domain.StoreReport, error) {
	data, err := os.ReadFile(s.reportPath(requestID))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o relatório %s", requestID)
	}

	var reports []domain.StoreReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar o relatório %s", requestID)
	}

	return reports, nil
}

// RenderCSV converte o relatório no CSV final: a coluna de hora em minutos,
// as de dia e semana em horas
func (s *ReportStore) RenderCSV(reports []domain.StoreReport) string {
	var sb strings.Builder
	sb.WriteString(reportCSVHeader)
	sb.WriteByte('\n')

	for _, report := range reports {
		sb.WriteString(fmt.Sprintf(
			"%s,%d,%s,%s,%d,%s,%s\n",
			report.StoreID,
			report.Hour.Active,
			formatHours(report.Day.Active),
			formatHours(report.Week.Active),
			report.Hour.Inactive,
			formatHours(report.Day.Inactive),
			formatHours(report.Week.Inactive),
		))
	}

	return sb.String()
}

// formatHours converte minutos em horas sem zeros à direita supérfluos
func formatHours(minutes int) string {
	return fmt.Sprintf("%g", float64(minutes)/60.0)
}

func (s *ReportStore) reportPath(requestID string) string {
	return filepath.Join(s.dir, requestID+".json")
}

var _ reporting.ReportSink = (*ReportStore)(nil)
