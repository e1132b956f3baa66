package datasync

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	QuestionsFile  = "questions.yml"
	FlashcardsFile = "flashcards.yml"
)

// YAMLSink writes exported data as one YAML file per table.
type YAMLSink struct {
	outputDir string
}

func NewYAMLSink(outputDir string) *YAMLSink {
	return &YAMLSink{outputDir: outputDir}
}

func (s *YAMLSink) WriteAll(data *ExportData) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := writeYAML(filepath.Join(s.outputDir, QuestionsFile), data.Questions); err != nil {
		return fmt.Errorf("write %s: %w", QuestionsFile, err)
	}
	if err := writeYAML(filepath.Join(s.outputDir, FlashcardsFile), data.Flashcards); err != nil {
		return fmt.Errorf("write %s: %w", FlashcardsFile, err)
	}
	return nil
}

// ReadYAML loads data written by YAMLSink. A missing file yields no rows for that table.
func ReadYAML(inputDir string) (*ExportData, error) {
	var data ExportData
	if err := readYAML(filepath.Join(inputDir, QuestionsFile), &data.Questions); err != nil {
		return nil, fmt.Errorf("read %s: %w", QuestionsFile, err)
	}
	if err := readYAML(filepath.Join(inputDir, FlashcardsFile), &data.Flashcards); err != nil {
		return nil, fmt.Errorf("read %s: %w", FlashcardsFile, err)
	}
	return &data, nil
}

func writeYAML(path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

func readYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}
