package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Decode reads a gzipped NDJSON stream into a Dataset. Blank lines are skipped;
// a malformed line or an unknown kind fails the whole file.
func Decode(ctx context.Context, r io.Reader) (*Dataset, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	ds := &Dataset{}

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := decodeLine(ds, []byte(line)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}

	return ds, nil
}

func decodeLine(ds *Dataset, line []byte) error {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(line, &head); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	switch head.Kind {
	case KindCategory:
		var rec CategoryRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		if rec.Name == "" {
			return fmt.Errorf("category name is required")
		}
		ds.Categories = append(ds.Categories, rec)
	case KindProduct:
		var rec ProductRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		if rec.Name == "" || rec.Category == "" {
			return fmt.Errorf("product name and category are required")
		}
		ds.Products = append(ds.Products, rec)
	case KindUser:
		var rec UserRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		if rec.Name == "" || rec.Email == "" {
			return fmt.Errorf("user name and email are required")
		}
		ds.Users = append(ds.Users, rec)
	default:
		return fmt.Errorf("unknown record kind %q", head.Kind)
	}
	return nil
}
