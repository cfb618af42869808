// Package storage provides candidate slate sources backed by files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/votolimpio/puntaje/internal/domain"
	"github.com/votolimpio/puntaje/internal/ports"
)

var _ ports.CandidateSource = (*YAMLCandidateSource)(nil)

// YAMLCandidateSource implements the CandidateSource interface over a
// YAML file holding a list of candidate records. The file is re-read on
// every call, so a long-running caller picks up edits between runs.
type YAMLCandidateSource struct {
	path string
}

// NewYAMLCandidateSource creates a source reading from the given path.
func NewYAMLCandidateSource(path string) *YAMLCandidateSource {
	return &YAMLCandidateSource{path: path}
}

// Candidates implements the CandidateSource interface. Unknown fields
// in the file are rejected so typos in record keys surface as errors
// instead of silently empty fields.
func (s *YAMLCandidateSource) Candidates(ctx context.Context) ([]domain.CandidateData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open candidates file: %w", err)
	}
	defer f.Close()

	var candidates []domain.CandidateData
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&candidates); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse candidates file %s: %w", s.path, err)
	}
	return candidates, nil
}
