package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/audiograms/internal/controller"
	"github.com/mesh-intelligence/audiograms/internal/gateway"
	"github.com/mesh-intelligence/audiograms/internal/journal"
	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/internal/page"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// session holds what one command invocation needs to talk to the admin
// API. The caller must Close it.
type session struct {
	cfg     types.Config
	log     *logging.Logger
	journal *journal.Journal
	factory controller.Factory
}

func openSession() (*session, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, sysErr(err)
	}
	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, sysErr(fmt.Errorf("build logger: %w", err))
	}
	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		log.Sync()
		return nil, sysErr(err)
	}
	client, err := gateway.NewClient(cfg, gateway.WithLogger(log), gateway.WithRecorder(j))
	if err != nil {
		_ = j.Close()
		log.Sync()
		return nil, sysErr(err)
	}
	return &session{
		cfg:     cfg,
		log:     log,
		journal: j,
		factory: controller.Factory{Client: client, Log: log},
	}, nil
}

func (s *session) Close() {
	if err := s.journal.Close(); err != nil {
		s.log.Warn("close journal", "error", err)
	}
	s.log.Sync()
}

// pageAction runs one controller operation on p.
type pageAction func(ctx context.Context, f controller.Factory, p *page.Page) error

// runPage loads the form file, sets the edit field when editID is non-nil,
// runs action, writes the form back and reports the outcome. The form is
// written even when action fails so the page reflects what the curator
// would see.
func runPage(cmd *cobra.Command, editID *string, action pageAction) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := loadPage(flags.formPath)
	if err != nil {
		return sysErr(err)
	}
	if editID != nil {
		p.EditID = *editID
	}

	actionErr := action(cmd.Context(), s.factory, p)

	if err := p.Store(flags.formPath); err != nil {
		return sysErr(err)
	}
	if err := printPage(cmd.OutOrStdout(), p); err != nil {
		return sysErr(err)
	}
	return actionErr
}

// loadPage reads the form file, or returns an empty page when there is none.
func loadPage(path string) (*page.Page, error) {
	p, err := page.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return page.New(), nil
	}
	return p, err
}

// pageOutput is the JSON view of a page after a command.
type pageOutput struct {
	EditID         string   `json:"edit_id"`
	Form           string   `json:"form"`
	Displayed      bool     `json:"displayed"`
	ActionsVisible bool     `json:"actions_visible"`
	Alerts         []string `json:"alerts"`
}

func printPage(w io.Writer, p *page.Page) error {
	if flags.jsonMode {
		out := pageOutput{
			EditID:         p.EditID,
			Form:           flags.formPath,
			Displayed:      p.Output != nil,
			ActionsVisible: p.ActionsVisible,
			Alerts:         p.Alerts,
		}
		if out.Alerts == nil {
			out.Alerts = []string{}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal page: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, a := range p.Alerts {
		fmt.Fprintln(w, a)
	}
	if p.Output != nil {
		fmt.Fprintf(w, "form %s: editing %s\n", flags.formPath, p.EditID)
	}
	return nil
}
