package daily

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal"
	"github.com/goto/chronoset/client/cmd/internal/utils"
	"github.com/goto/chronoset/client/local/model"
	"github.com/goto/chronoset/config"
)

type sharedFlags struct {
	configFilePath string
	documentPath   string
	outputFormat   string
	location       string

	clientConfig *config.ClientConfig
	repository   windowRepository
	loc          *time.Location
}

func (s *sharedFlags) inject(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&s.documentPath, "file", "f", "", "File path of the interval document holding named windows")
	cmd.Flags().StringVarP(&s.outputFormat, "output", "o", "", "Output format: table, yaml or json")
	cmd.Flags().StringVarP(&s.location, "location", "l", "", "IANA location the windows are read in")
}

// load reads the configuration and the optional document. The location comes from the flag,
// then the document, then the client configuration.
func (s *sharedFlags) load() error {
	var err error
	s.clientConfig, err = internal.LoadConfig(s.configFilePath)
	if err != nil {
		return err
	}
	s.outputFormat = utils.GetFirstNonEmpty(s.outputFormat, string(s.clientConfig.Output.Format))

	var doc *model.Document
	if s.documentPath != "" {
		doc, err = internal.LoadDocument(s.documentPath)
		if err != nil {
			return err
		}
	}
	s.repository = windowRepository{document: doc}

	if s.location != "" {
		s.loc, err = time.LoadLocation(s.location)
		return err
	}
	fallback, err := s.clientConfig.LoadLocation()
	if err != nil {
		return err
	}
	if doc == nil {
		s.loc = fallback
		return nil
	}
	s.loc, err = doc.LoadLocation(fallback)
	return err
}
