package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// csvHeader is the column order for transaction import and export.
var csvHeader = []string{"date", "amount", "type", "description", "category_id", "account_id", "is_shared"}

// CSVService imports and exports transactions as CSV. Export covers the
// transactions the caller can see; import creates transactions for the
// caller, applying the same validation and balance maintenance as the
// API.
type CSVService struct {
	txns *TransactionService
}

// NewCSVService creates a new CSVService.
func NewCSVService(txns *TransactionService) *CSVService {
	return &CSVService{txns: txns}
}

// ImportResult reports an import run. Failed rows are skipped with a
// per-row error; successful rows are committed regardless.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Import reads CSV rows and creates a transaction per row for the
// caller. The first row must be the header.
func (s *CSVService) Import(ctx context.Context, userID string, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrValidation("missing CSV header")
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, domain.ErrValidation("unexpected CSV header: want %q", csvHeader)
		}
	}

	result := &ImportResult{}
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", line, err))
			continue
		}

		req, err := rowToRequest(record)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", line, err))
			continue
		}
		if _, err := s.txns.Create(ctx, userID, req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %s", line, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

func rowToRequest(record []string) (*domain.CreateTransactionRequest, error) {
	amount, err := strconv.ParseInt(record[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("amount %q is not integer cents", record[1])
	}
	isShared := false
	if record[6] != "" {
		isShared, err = strconv.ParseBool(record[6])
		if err != nil {
			return nil, fmt.Errorf("is_shared %q is not a boolean", record[6])
		}
	}
	return &domain.CreateTransactionRequest{
		Date:        record[0],
		Amount:      amount,
		Type:        domain.TransactionType(record[2]),
		Description: record[3],
		CategoryID:  record[4],
		AccountID:   record[5],
		IsShared:    isShared,
	}, nil
}

// Export writes the caller's visible transactions as CSV. Admins export
// the whole family's ledger.
func (s *CSVService) Export(ctx context.Context, p access.Principal, filters *domain.TransactionFilters, w io.Writer) error {
	txns, err := s.txns.List(ctx, p, filters)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range txns {
		record := []string{
			t.Date.Format("2006-01-02"),
			strconv.FormatInt(t.Amount, 10),
			string(t.Type),
			t.Description,
			t.CategoryID,
			t.AccountID,
			strconv.FormatBool(t.IsShared),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
