package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/guillocut/internal/importer"
	"github.com/piwi3910/guillocut/internal/model"
)

// referenceCatalog is used when no pieces are given.
func referenceCatalog() model.Catalog {
	return model.Catalog{
		model.NewPiece("2x3", 2, 3, 10),
		model.NewPiece("1x2", 1, 2, 5),
		model.NewPiece("3x4", 3, 4, 15),
	}
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (use WxH)", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return width, height, nil
}

// parsePiece parses "WxH:VALUE" or "LABEL=WxH:VALUE".
func parsePiece(s string) (model.Piece, error) {
	label, spec, hasLabel := strings.Cut(s, "=")
	if !hasLabel {
		spec = s
	}
	size, value, ok := strings.Cut(spec, ":")
	if !ok {
		return model.Piece{}, fmt.Errorf("invalid piece %q (use WxH:VALUE)", s)
	}
	w, h, err := parseSize(size)
	if err != nil {
		return model.Piece{}, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return model.Piece{}, fmt.Errorf("invalid value in %q: %w", s, err)
	}
	label = strings.TrimSpace(label)
	if !hasLabel || label == "" {
		label = fmt.Sprintf("%dx%d", w, h)
	}
	return model.NewPiece(label, w, h, v), nil
}

// catalog gathers pieces from --catalog and --piece, falling back to the
// reference catalog when neither is given.
func (c *cli) catalog(cmd *cobra.Command) (model.Catalog, error) {
	var catalog model.Catalog

	if path := c.v.GetString("catalog"); path != "" {
		res := importer.ImportFile(path)
		for _, w := range res.Warnings {
			log.Warn().Str("file", path).Msg(w)
		}
		if !res.OK() {
			for _, e := range res.Errors {
				log.Error().Str("file", path).Msg(e)
			}
			return nil, fmt.Errorf("failed to import %s: %d errors, %d pieces", path, len(res.Errors), len(res.Pieces))
		}
		catalog = append(catalog, res.Pieces...)
	}

	specs, err := cmd.Flags().GetStringArray("piece")
	if err != nil {
		return nil, err
	}
	for _, s := range specs {
		p, err := parsePiece(s)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, p)
	}

	if len(catalog) == 0 {
		log.Info().Msg("no pieces given, using the reference catalog")
		catalog = referenceCatalog()
	}
	log.Debug().Strs("pieces", catalog.Labels()).Msg("catalog")
	return catalog, nil
}
