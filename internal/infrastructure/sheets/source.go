// Package sheets fetches the raw rows of the item sheets.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/parsers"
)

// DefaultTimeout bounds a single sheet download.
const DefaultTimeout = 30 * time.Second

// Location says where one act's sheet lives. File wins over URL.
type Location struct {
	URL  string
	File string
}

// Source implements ports.SheetSource over published CSV exports and local files.
type Source struct {
	locations map[entities.Act]Location
	client    *http.Client
}

// NewSource creates a sheet source. A nil client gets a default one with DefaultTimeout.
func NewSource(locations map[entities.Act]Location, client *http.Client) *Source {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Source{
		locations: locations,
		client:    client,
	}
}

// Fetch returns the rows of the act's sheet.
func (s *Source) Fetch(ctx context.Context, act entities.Act) ([][]string, error) {
	loc, ok := s.locations[act]
	if !ok || (loc.File == "" && loc.URL == "") {
		return nil, fmt.Errorf("no sheet configured for act %d", act)
	}

	if loc.File != "" {
		return s.fetchFile(loc.File)
	}
	return s.fetchURL(ctx, act, loc.URL)
}

func (s *Source) fetchURL(ctx context.Context, act entities.Act, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for act %d: %w", act, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet for act %d: %w", act, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching sheet for act %d: %s", act, resp.Status)
	}

	rows, err := (&parsers.CSVRowReader{}).ReadRows(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sheet for act %d: %w", act, err)
	}
	return rows, nil
}

func (s *Source) fetchFile(path string) ([][]string, error) {
	reader := parsers.ForFile(path)
	if reader == nil {
		return nil, fmt.Errorf("unsupported sheet format: %s", path)
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("sheet file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening sheet file: %w", err)
	}
	defer file.Close()

	rows, err := reader.ReadRows(file)
	if err != nil {
		return nil, fmt.Errorf("reading sheet file %s: %w", path, err)
	}
	return rows, nil
}
