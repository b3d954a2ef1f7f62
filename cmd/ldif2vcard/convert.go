package main

import (
	"fmt"
	"io"
	"os"

	"ldif2vcard/internal/apperr"
	"ldif2vcard/internal/config"
	"ldif2vcard/internal/convert"
)

// convertFiles converts the inputs in order into a single output and
// reports unsupported attributes once at the end.
func convertFiles(cfg *config.Config, inputs []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	logger := newLogger(stderr, cfg.Verbose)

	out := stdout

	if cfg.Output != config.Stdio {
		f, oerr := os.Create(cfg.Output)
		if oerr != nil {
			return apperr.Wrap(oerr, "cannot open output %q", cfg.Output)
		}

		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()

		out = f
	}

	conv := convert.NewConverter(out, convert.Options{
		DefaultRingtone: cfg.Ringtone,
		UID:             cfg.UID,
		Logger:          logger,
	})

	for _, path := range inputs {
		if err := convertInput(conv, path, stdin); err != nil {
			return err
		}
	}

	stats := conv.Stats()
	logger.Debug("done", "records", stats.Records, "cards", stats.Cards, "skipped", stats.Skipped,
		"unsupported", conv.Registry().Len())

	return conv.Report(stderr)
}

func convertInput(conv *convert.Converter, path string, stdin io.Reader) error {
	if path == config.Stdio {
		return wrapInput(conv.ConvertStream(stdin), "<stdin>")
	}

	f, err := os.Open(path)
	if err != nil {
		return apperr.Wrap(err, "cannot open input %q", path)
	}
	defer f.Close()

	return wrapInput(conv.ConvertStream(f), path)
}

func wrapInput(err error, name string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", name, err)
}
