package internal

import (
	"github.com/spf13/afero"

	"github.com/goto/chronoset/client/local/model"
	"github.com/goto/chronoset/client/local/specio"
)

// LoadDocument reads the interval document at documentPath from the local filesystem.
func LoadDocument(documentPath string) (*model.Document, error) {
	readWriter, err := specio.NewDocumentReadWriter(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	return readWriter.Read(documentPath)
}

// SaveDocument writes doc back to the path it was read from.
func SaveDocument(doc *model.Document) error {
	readWriter, err := specio.NewDocumentReadWriter(afero.NewOsFs())
	if err != nil {
		return err
	}
	return readWriter.Write(doc.Path, doc)
}
