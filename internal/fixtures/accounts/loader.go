// Package accounts loads sample accounts used to seed a store.
package accounts

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	accountsvc "github.com/amirasaad/finance/pkg/service/account"
)

//go:embed accounts.csv
var accountsCSV string

var columns = []string{"name", "type", "balance", "currency", "active", "default", "description", "color"}

// LoadAccountsCSV reads create requests from a CSV file. An empty path
// loads the embedded sample set.
func LoadAccountsCSV(path string) ([]accountsvc.CreateRequest, error) {
	if path == "" {
		return ParseAccountsCSV(strings.NewReader(accountsCSV))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close() //nolint:errcheck
	return ParseAccountsCSV(f)
}

// ParseAccountsCSV parses rows in the column order of the header
// name,type,balance,currency,active,default,description,color.
func ParseAccountsCSV(r io.Reader) ([]accountsvc.CreateRequest, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("invalid CSV format: missing header")
	}
	if len(records[0]) < len(columns) {
		return nil, fmt.Errorf("invalid CSV format: expected at least %d columns, got %d", len(columns), len(records[0]))
	}

	reqs := make([]accountsvc.CreateRequest, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		balance, err := parseFloat(rec[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: balance: %w", line, err)
		}
		active, err := parseBool(rec[4], true)
		if err != nil {
			return nil, fmt.Errorf("line %d: active: %w", line, err)
		}
		isDefault, err := parseBool(rec[5], false)
		if err != nil {
			return nil, fmt.Errorf("line %d: default: %w", line, err)
		}
		reqs = append(reqs, accountsvc.CreateRequest{
			Name:        rec[0],
			Type:        rec[1],
			Balance:     balance,
			Currency:    strings.ToUpper(rec[3]),
			IsActive:    &active,
			IsDefault:   isDefault,
			Description: rec[6],
			Color:       rec[7],
		})
	}
	return reqs, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseBool(s string, fallback bool) (bool, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseBool(strings.ToLower(s))
}
