package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"mini-bank/internal/domain"
)

// CSVOperationSource implements the OperationSource interface for CSV files.
type CSVOperationSource struct{}

// NewCSVOperationSource creates a new source instance.
func NewCSVOperationSource() *CSVOperationSource {
	return &CSVOperationSource{}
}

// GetOperations reads and parses an operation script with the columns
// account,operation,amount. The amount may be empty for operations that take none.
func (r *CSVOperationSource) GetOperations(ctx context.Context, path string) ([]domain.Operation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open operation file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var operations []domain.Operation
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		line, _ := reader.FieldPos(0)

		op := domain.Operation{
			Line:          line,
			AccountNumber: strings.TrimSpace(record[0]),
			Type:          domain.OperationType(strings.ToLower(strings.TrimSpace(record[1]))),
		}
		if raw := strings.TrimSpace(record[2]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("could not parse amount '%s' on line %d: %w", raw, line, err)
			}
			op.Amount = amount
		}
		operations = append(operations, op)
	}
	return operations, nil
}
