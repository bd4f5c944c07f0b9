// Package csvio reads feedback columns from CSV files and writes analyzed
// results back out.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spacesedan/sentiment-miner/internal/models"
)

// ReadColumn extracts one named column from a CSV file, by header. Blank
// cells come back as empty strings so row positions are preserved.
func ReadColumn(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("CSV file not found: %s", path)
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIdx := -1
	for i, name := range header {
		if name == column {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("column %q not found. Available columns: %s",
			column, strings.Join(header, ", "))
	}

	var texts []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		if colIdx < len(record) {
			texts = append(texts, record[colIdx])
		} else {
			texts = append(texts, "")
		}
	}

	return texts, nil
}

// SaveResults writes one row per result, in order, with topics joined by ", ".
func SaveResults(results []models.AnalysisResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"Original Text", "Sentiment", "Extracted Topics"}); err != nil {
		return err
	}

	for _, result := range results {
		record := []string{
			result.OriginalText,
			result.Sentiment,
			strings.Join(result.Topics, ", "),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// OutputPath derives the default output path, adding an "_analyzed" suffix
// before the extension.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	return stem + "_analyzed" + ext
}
