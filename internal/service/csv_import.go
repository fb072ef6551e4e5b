package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
)

// ImportResult reports the outcome of a CSV herd import. Rows that fail
// validation are skipped and reported; valid rows are imported regardless.
type ImportResult struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// ImportError identifies a rejected CSV row by its 1-based line number.
type ImportError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportCSV reads herd records from CSV data and stores the valid ones.
// The first row must be a header naming at least name, species, category,
// head_count, and initial_weight_kg; column order is free.
func (s *HerdService) ImportCSV(reader io.Reader) (ImportResult, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"name", "species", "category", "head_count", "initial_weight_kg"} {
		if _, ok := index[required]; !ok {
			return ImportResult{}, fmt.Errorf("CSV header missing required column %q", required)
		}
	}

	result := ImportResult{}
	line := 1

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Line: line, Message: err.Error()})
			continue
		}

		req, err := herdRequestFromRecord(record, index)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Line: line, Message: err.Error()})
			continue
		}

		if _, err := s.CreateHerd(req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Line: line, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	s.logger.Info("herd CSV import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

func herdRequestFromRecord(record []string, index map[string]int) (request.CreateHerdRequest, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	headCount, err := strconv.Atoi(field("head_count"))
	if err != nil {
		return request.CreateHerdRequest{}, fmt.Errorf("invalid head_count %q", field("head_count"))
	}

	initialWeight, err := strconv.ParseFloat(field("initial_weight_kg"), 64)
	if err != nil {
		return request.CreateHerdRequest{}, fmt.Errorf("invalid initial_weight_kg %q", field("initial_weight_kg"))
	}

	req := request.CreateHerdRequest{
		Name:              field("name"),
		Species:           field("species"),
		Breed:             field("breed"),
		Category:          field("category"),
		Sex:               field("sex"),
		HeadCount:         headCount,
		CreatedAt:         field("created_at"),
		InitialWeightKg:   initialWeight,
		IsBreeder:         parseBool(field("is_breeder")),
		IsPregnant:        parseBool(field("is_pregnant")),
		PreferredSaleyard: field("preferred_saleyard"),
	}

	if dwg := field("daily_weight_gain"); dwg != "" {
		parsed, err := strconv.ParseFloat(dwg, 64)
		if err != nil {
			return request.CreateHerdRequest{}, fmt.Errorf("invalid daily_weight_gain %q", dwg)
		}
		req.DailyWeightGain = parsed
	}

	if joined := field("joined_date"); joined != "" {
		req.JoinedDate = &joined
	}

	if rate := field("calving_rate"); rate != "" {
		parsed, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return request.CreateHerdRequest{}, fmt.Errorf("invalid calving_rate %q", rate)
		}
		req.CalvingRate = &parsed
	}

	return req, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}
