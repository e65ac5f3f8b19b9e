package specio

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/goto/chronoset/client/local/model"
)

const documentIndent = 2

type DocumentReadWriter struct {
	specFS afero.Fs
}

func NewDocumentReadWriter(specFS afero.Fs) (*DocumentReadWriter, error) {
	if specFS == nil {
		return nil, errors.New("specFS is nil")
	}
	return &DocumentReadWriter{specFS: specFS}, nil
}

// Read decodes and validates the interval document at filePath.
func (d DocumentReadWriter) Read(filePath string) (*model.Document, error) {
	if filePath == "" {
		return nil, errors.New("document file path is empty")
	}

	f, err := d.specFS.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening document under [%s]: %w", filePath, err)
	}
	defer f.Close()

	doc := &model.Document{}
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("error decoding document under [%s]: %w", filePath, err)
	}
	doc.Path = filePath

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Write validates doc and stores it at filePath, creating parent directories.
func (d DocumentReadWriter) Write(filePath string, doc *model.Document) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	buff := new(bytes.Buffer)
	encoder := yaml.NewEncoder(buff)
	encoder.SetIndent(documentIndent)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	if err := d.specFS.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("error creating directory for [%s]: %w", filePath, err)
	}
	return afero.WriteFile(d.specFS, filePath, buff.Bytes(), 0o644)
}
