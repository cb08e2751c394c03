package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
	"github.com/blogem/asset-tracker/userctx"
)

// ExportFormat is a tabular output format
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatHTML ExportFormat = "html"
)

// ParseExportFormat defaults an empty value to CSV and rejects unknown formats
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX, FormatHTML:
		return ExportFormat(s), nil
	default:
		return "", models.ValidationError{Field: "format", Message: "unsupported export format " + s}
	}
}

// ContentType returns the HTTP content type for the format
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Filename returns a dated download name such as audit-trail-2024-01-31.csv
func (f ExportFormat) Filename(base string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", base, now.Format("2006-01-02"), f)
}

// ExportService writes tabular exports of the audit trail and inventory
type ExportService interface {
	ExportAuditTrail(ctx context.Context, format ExportFormat, filter models.ChangeRecordFilter, w io.Writer) error
	ExportAssets(ctx context.Context, format ExportFormat, filter models.AssetFilter, w io.Writer) error
	ExportEmployees(ctx context.Context, format ExportFormat, w io.Writer) error
	ExportDepartments(ctx context.Context, format ExportFormat, w io.Writer) error
}

type exportService struct {
	changeRecordRepo repositories.ChangeRecordRepository
	assetRepo        repositories.AssetRepository
	profileRepo      repositories.ProfileRepository
	departmentRepo   repositories.DepartmentRepository
	now              func() time.Time
}

// NewExportService creates a new export service
func NewExportService(
	changeRecordRepo repositories.ChangeRecordRepository,
	assetRepo repositories.AssetRepository,
	profileRepo repositories.ProfileRepository,
	departmentRepo repositories.DepartmentRepository,
) ExportService {
	return &exportService{
		changeRecordRepo: changeRecordRepo,
		assetRepo:        assetRepo,
		profileRepo:      profileRepo,
		departmentRepo:   departmentRepo,
		now:              time.Now,
	}
}

func requireExporter(ctx context.Context) error {
	if err := requireExporter(ctx); err != nil {
		return err
	}
	return nil
}

// table is a flattened export ready to be written in any format
type table struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// ExportAuditTrail writes up to MaxQueryLimit change records matching filter
func (s *exportService) ExportAuditTrail(ctx context.Context, format ExportFormat, filter models.ChangeRecordFilter, w io.Writer) error {
	if err := requireExporter(ctx); err != nil {
		return err
	}

	records, err := s.changeRecordRepo.QueryAll(ctx, filter, repositories.MaxQueryLimit)
	if err != nil {
		return errors.Wrap(err, "failed to load audit trail")
	}

	t := table{Title: "Audit Trail", Columns: models.ChangeRecordExportColumns}
	for _, record := range records {
		flat, err := models.FlattenChangeRecord(record)
		if err != nil {
			return errors.Wrapf(err, "failed to flatten change record %s", record.ID)
		}
		t.Rows = append(t.Rows, rowFrom(flat, t.Columns))
	}

	return s.write(format, t, w)
}

// ExportAssets writes every asset matching filter
func (s *exportService) ExportAssets(ctx context.Context, format ExportFormat, filter models.AssetFilter, w io.Writer) error {
	if err := requireExporter(ctx); err != nil {
		return err
	}

	assets, err := s.assetRepo.GetAll(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "failed to load assets")
	}

	t := table{Title: "Assets", Columns: models.AssetExportColumns}
	for _, asset := range assets {
		t.Rows = append(t.Rows, rowFrom(models.FlattenAsset(asset), t.Columns))
	}

	return s.write(format, t, w)
}

// ExportEmployees writes every employee with department and assigned asset count
func (s *exportService) ExportEmployees(ctx context.Context, format ExportFormat, w io.Writer) error {
	if err := requireExporter(ctx); err != nil {
		return err
	}

	employees, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load employees")
	}

	t := table{Title: "Employees", Columns: models.EmployeeExportColumns}
	for _, employee := range employees {
		t.Rows = append(t.Rows, rowFrom(models.FlattenEmployee(employee), t.Columns))
	}

	return s.write(format, t, w)
}

// ExportDepartments writes every department with its member and asset counts
func (s *exportService) ExportDepartments(ctx context.Context, format ExportFormat, w io.Writer) error {
	if err := requireExporter(ctx); err != nil {
		return err
	}

	departments, err := s.departmentRepo.GetAllDetails(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load departments")
	}

	t := table{Title: "Departments", Columns: models.DepartmentExportColumns}
	for _, department := range departments {
		t.Rows = append(t.Rows, rowFrom(models.FlattenDepartment(department), t.Columns))
	}

	return s.write(format, t, w)
}

func (s *exportService) write(format ExportFormat, t table, w io.Writer) error {
	switch format {
	case FormatCSV:
		return writeCSV(t, w)
	case FormatXLSX:
		return writeXLSX(t, w)
	case FormatHTML:
		return writeHTML(t, s.now(), w)
	default:
		return models.ValidationError{Field: "format", Message: "unsupported export format " + string(format)}
	}
}

func rowFrom(flat map[string]any, columns []string) []any {
	row := make([]any, len(columns))
	for i, column := range columns {
		row[i] = flat[column]
	}
	return row
}

func cellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func writeCSV(t table, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Columns); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = cellText(value)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush csv")
}

func writeXLSX(t table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Title
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "failed to name sheet")
	}

	header := make([]any, len(t.Columns))
	for i, column := range t.Columns {
		header[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "failed to resolve cell")
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i+1)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Wrap(err, "failed to freeze header row")
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

var htmlExportTemplate = template.Must(template.New("export").Funcs(template.FuncMap{
	"cell": cellText,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Table.Title}}</title>
<style>
body { font-family: sans-serif; font-size: 12px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 6px; text-align: left; vertical-align: top; }
th { background: #f3f3f3; }
</style>
</head>
<body>
<h1>{{.Table.Title}}</h1>
<p>Generated {{.Generated}} &middot; {{len .Table.Rows}} rows</p>
<table>
<thead><tr>{{range .Table.Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Table.Rows}}<tr>{{range .}}<td>{{cell .}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

func writeHTML(t table, now time.Time, w io.Writer) error {
	data := struct {
		Table     table
		Generated string
	}{
		Table:     t,
		Generated: now.UTC().Format(time.RFC3339),
	}

	if err := htmlExportTemplate.Execute(w, data); err != nil {
		return errors.Wrap(err, "failed to render html export")
	}
	return nil
}
